package parser

import (
	"math"
	"time"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

// SerializeTable flattens t into one record per cell, row-major. Headers are
// taken from the table's own row 0 and column 0.
func SerializeTable(t grid.Grid, meta models.Metadata) []models.SerializedCell {
	rows, cols := t.Rows(), t.Cols()
	result := make([]models.SerializedCell, 0, rows*cols)

	for r := 0; r < rows; r++ {
		rHeader := t.At(r, 0).String()
		for c := 0; c < cols; c++ {
			cell := t.At(r, c)
			result = append(result, models.SerializedCell{
				Row:       r,
				Column:    c,
				Value:     cell.Value(),
				Type:      cell.Kind().String(),
				CHeader:   t.At(0, c).String(),
				RHeader:   rHeader,
				ExcelRC:   excelRC(t, r, c),
				Name:      meta.Name,
				Sheet:     meta.Sheet,
				FName:     meta.FName,
				Timestamp: meta.Timestamp,
			})
		}
	}

	return result
}

// excelRC returns the absolute reference of a table cell. Grids that are
// not views are their own origin.
func excelRC(g grid.Grid, r, c int) string {
	if t, ok := g.(grid.Table); ok {
		return t.Absolute(r, c).String()
	}
	return grid.Address{Row: r, Col: c}.String()
}

// NormalizeRecord converts a loosely typed record, such as a query row, into
// a SerializedCell. Unknown keys are ignored.
func NormalizeRecord(data map[string]interface{}) models.SerializedCell {
	var rec models.SerializedCell

	if v, ok := data["row"]; ok {
		rec.Row = toInt(v)
	}
	if v, ok := data["column"]; ok {
		rec.Column = toInt(v)
	}

	strs := map[string]*string{
		"type":     &rec.Type,
		"c_header": &rec.CHeader,
		"r_header": &rec.RHeader,
		"excel_RC": &rec.ExcelRC,
		"name":     &rec.Name,
		"sheet":    &rec.Sheet,
		"f_name":   &rec.FName,
	}
	for k, dst := range strs {
		if v, ok := data[k]; ok {
			*dst = models.ValueString(v)
		}
	}
	if v, ok := data["value"]; ok {
		rec.Value = models.ValueString(v)
	}

	if v, ok := data["timestamp"].(time.Time); ok {
		rec.Timestamp = &v
	}

	return rec
}

func toInt(v interface{}) int {
	switch x := v.(type) {
	case int:
		return x
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case float64:
		return int(math.Trunc(x))
	case string:
		i, _ := parseValue(x).(int64)
		return int(i)
	}
	return 0
}
