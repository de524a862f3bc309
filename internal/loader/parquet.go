package loader

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"tabscrub/internal/dataset"
)

// readParquet reads a parquet file through the Arrow bridge. Unlike
// the textual formats, parquet carries an explicit schema, so column
// kinds map straight from the Arrow types with no inference pass.
func readParquet(ctx context.Context, path string) (*dataset.Table, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer rdr.Close()

	fr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	atbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer atbl.Release()

	t := &dataset.Table{Columns: make([]dataset.Column, atbl.NumCols())}
	for j := 0; j < int(atbl.NumCols()); j++ {
		field := atbl.Schema().Field(j)
		kind := kindFromArrow(field.Type)
		col := dataset.Column{
			Name:  field.Name,
			Kind:  kind,
			Cells: make([]dataset.Cell, 0, atbl.NumRows()),
		}
		for _, chunk := range atbl.Column(j).Data().Chunks() {
			for i := 0; i < chunk.Len(); i++ {
				col.Cells = append(col.Cells, cellFromArrow(chunk, i, kind))
			}
		}
		t.Columns[j] = col
	}
	return t, nil
}

func kindFromArrow(dt arrow.DataType) dataset.Kind {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
		arrow.DECIMAL128, arrow.DECIMAL256:
		return dataset.KindNumeric
	case arrow.BOOL:
		return dataset.KindBoolean
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP:
		return dataset.KindTemporal
	default:
		return dataset.KindText
	}
}

func cellFromArrow(arr arrow.Array, i int, kind dataset.Kind) dataset.Cell {
	if arr.IsNull(i) {
		return dataset.Null()
	}
	if kind != dataset.KindNumeric {
		return dataset.Text(arr.ValueStr(i))
	}
	switch a := arr.(type) {
	case *array.Float64:
		return dataset.Numeric(a.Value(i))
	case *array.Float32:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Int64:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Int32:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Int16:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Int8:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Uint64:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Uint32:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Uint16:
		return dataset.Numeric(float64(a.Value(i)))
	case *array.Uint8:
		return dataset.Numeric(float64(a.Value(i)))
	default:
		if v, ok := dataset.ParseNumber(arr.ValueStr(i)); ok {
			return dataset.Numeric(v)
		}
		return dataset.Null()
	}
}
