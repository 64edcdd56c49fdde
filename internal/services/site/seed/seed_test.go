package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/storage"
	"github.com/tsolutions/site/internal/services/site/storage/sqlstore"
)

const sample = `
services:
  - name: Consulting
    description: We help businesses grow
faq:
  - question: Do you travel?
    answer: Yes, within the region.
reviews:
  - {name: Eva, description: Great work, grade: 9}
  - {name: Bo, description: "", grade: 7}
`

func TestParseNormalizesSectionsAndScalars(t *testing.T) {
	t.Parallel()

	file, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, file["services"], 1)
	require.Len(t, file["faqs"], 1, "singular section name maps to plural kind")
	require.Len(t, file["reviews"], 2)
	require.Equal(t, "9", file["reviews"][0]["grade"])
}

func TestParseRejectsUnknownSection(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("pricing:\n  - amount: 10\n"))
	require.ErrorContains(t, err, "pricing")
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	file, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, file)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	t.Parallel()

	file, err := Parse(strings.NewReader(`
services:
  - {name: Web, description: short}
reviews:
  - {name: A, description: ok, grade: 11}
`))
	require.NoError(t, err)

	err = file.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"services[0]: Error: Name can't be less than 5 characters long",
		"services[0]: Error: Description can't be less than 10 characters long",
		"reviews[0]: Error: Name can't be less than 2 characters long",
		"reviews[0]: Error: Grade may at most be 10",
	} {
		require.ErrorContains(t, err, want)
	}
}

func TestApplyCreatesRecords(t *testing.T) {
	t.Parallel()

	db, err := sqlstore.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stores := map[string]storage.Store{}
	for _, kind := range resource.Kinds() {
		stores[kind.Plural] = db.Store(kind)
	}

	file, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	result, err := Apply(context.Background(), file, stores)
	require.NoError(t, err)
	require.Equal(t, Result{"services": 1, "faqs": 1, "reviews": 2}, result)

	reviews, err := stores["reviews"].List(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
}

func TestApplyWritesNothingWhenInvalid(t *testing.T) {
	t.Parallel()

	file := File{"faqs": {{"question": "Hi?", "answer": "Yes"}}}
	_, err := Apply(context.Background(), file, map[string]storage.Store{})
	require.Error(t, err)
}

func TestApplyRequiresStore(t *testing.T) {
	t.Parallel()

	file := File{"faqs": {{"question": "Do you travel?", "answer": "Yes"}}}
	_, err := Apply(context.Background(), file, map[string]storage.Store{})
	require.ErrorContains(t, err, "no store for faqs")
}

func TestParseNullValueReadsEmpty(t *testing.T) {
	t.Parallel()

	file, err := Parse(strings.NewReader("reviews:\n  - name: Eva\n    description:\n    grade: 5\n"))
	require.NoError(t, err)
	require.Equal(t, "", file["reviews"][0]["description"])
}
