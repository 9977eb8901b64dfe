package i18n

import (
	"testing"

	"product-compare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, English, Thai.Toggle())
	assert.Equal(t, Thai, English.Toggle())
	assert.Equal(t, Default, Default.Toggle().Toggle())
}

func TestParse(t *testing.T) {
	l, err := Parse(" EN ")
	require.NoError(t, err)
	require.Equal(t, English, l)

	_, err = Parse("fr")
	require.Error(t, err)
}

func TestLabelsCoverEveryLanguageAndErrorKind(t *testing.T) {
	kinds := []model.ErrorKind{
		model.KindMissingField,
		model.KindInsufficientData,
		model.KindInvalidInput,
		model.KindInternal,
	}
	for _, l := range []Language{Thai, English} {
		lb := For(l)
		require.Equal(t, l, lb.Lang)
		require.NotEmpty(t, lb.Title)
		require.NotEmpty(t, lb.MetricLabel)
		for _, k := range kinds {
			require.NotEmpty(t, lb.Error(k), "%s/%s", l, k)
		}
		require.Empty(t, lb.Error(model.KindNone))
	}
	require.Equal(t, Default, For("xx").Lang)
}
