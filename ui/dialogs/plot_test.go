package dialogs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bsmietanka/interactive-map/internal/dataset"
	"github.com/bsmietanka/interactive-map/internal/render"
)

func TestPlotFields(t *testing.T) {
	t.Parallel()

	columns := []string{dataset.ColumnType, dataset.ColumnDesc, dataset.ColumnID, dataset.ColumnPoints, "Powierzchnia morgi"}
	table := dataset.NewTable(columns, []string{"Powierzchnia morgi"}, []dataset.Row{{
		Key: "12",
		ID:  "b7",
		Cells: []dataset.Value{
			dataset.String("Dom"), dataset.String(""), dataset.String("b7"), dataset.Raw("[[1,2]]"), dataset.Int(0),
		},
	}})

	assert.Equal(t, []render.Field{
		{Name: "Numer", Value: "12"},
		{Name: "Typ", Value: "Dom"},
		{Name: "Opis", Value: ""},
		{Name: "ID", Value: "b7"},
		{Name: "Powierzchnia morgi", Value: "0"},
	}, PlotFields(table, 0))

	assert.Nil(t, PlotFields(table, 1))
	assert.Nil(t, PlotFields(table, -1))
}
