package psqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ana", want: "%ana%"},
		{in: "%%", want: `%\%\%%`},
		{in: "a_b", want: `%a\_b%`},
		{in: `c:\x`, want: `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.in))
		})
	}
}

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("habitaciones").Where("numero = ?", "101").ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "SELECT id FROM habitaciones WHERE numero = $1", query)
	assert.Equal(t, []interface{}{"101"}, args)
}
