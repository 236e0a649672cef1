package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

func testCatalog() []entity.CatalogProduct {
	return []entity.CatalogProduct{
		{ID: 1, Name: "Widget", Price: 9.5},
		{ID: 2, Name: "Gadget", Price: 4},
		{ID: 3, Name: "Sprocket", Price: 12.25},
	}
}

func TestNewStartsWithOneBlankLine(t *testing.T) {
	r := New(testCatalog())

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Blank())
	assert.Zero(t, r.Total())
	assert.Len(t, r.Catalog(), 3)
}

func TestSetProductSnapshotsNameAndPrice(t *testing.T) {
	r := New(testCatalog())

	require.NoError(t, r.SetProduct(0, "1"))

	lines := r.Lines()
	require.Len(t, lines, 2, "editing the last line appends a fresh blank line")
	assert.Equal(t, "1", lines[0].ProductRef)
	assert.Equal(t, "Widget", lines[0].ProductName)
	assert.Equal(t, 9.5, lines[0].UnitPrice)
	assert.True(t, lines[1].Blank())
}

func TestSetProductUnknownRefLeavesSnapshotStale(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "1"))

	require.NoError(t, r.SetProduct(0, "999"))

	lines := r.Lines()
	assert.Equal(t, "999", lines[0].ProductRef)
	assert.Equal(t, "Widget", lines[0].ProductName, "prior name stays")
	assert.Equal(t, 9.5, lines[0].UnitPrice, "prior price stays")
}

func TestTotalRecomputedAfterEveryEdit(t *testing.T) {
	r := New(testCatalog())

	require.NoError(t, r.SetProduct(0, "1"))
	require.NoError(t, r.SetQuantity(0, 2))
	assert.Equal(t, 19.0, r.Total())

	require.NoError(t, r.SetProduct(1, "2"))
	require.NoError(t, r.SetQuantity(1, 3))
	assert.Equal(t, 31.0, r.Total())

	require.NoError(t, r.SetUnitPrice(0, 10))
	assert.Equal(t, 32.0, r.Total())

	require.NoError(t, r.SetQuantity(1, 0))
	assert.Equal(t, 20.0, r.Total())
}

func TestTrailingBlankLineInvariant(t *testing.T) {
	r := New(testCatalog())

	require.NoError(t, r.SetQuantity(0, 2))
	require.Len(t, r.Lines(), 2)

	// Editing a non-last line must not grow the sequence.
	require.NoError(t, r.SetProduct(0, "1"))
	require.Len(t, r.Lines(), 2)

	// A blank-valued edit on the last line must not grow it either.
	require.NoError(t, r.SetQuantity(1, 0))
	require.NoError(t, r.SetProduct(1, ""))
	require.Len(t, r.Lines(), 2)

	require.NoError(t, r.SetUnitPrice(1, 5))
	assert.Len(t, r.Lines(), 3)
	assert.True(t, r.Lines()[2].Blank())
}

func TestBlankLinesMidSequenceSurvive(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "1"))
	require.NoError(t, r.SetQuantity(0, 1))
	require.NoError(t, r.SetProduct(1, "2"))
	require.NoError(t, r.SetQuantity(1, 1))

	// Blank out the first line; it must stay in place.
	require.NoError(t, r.SetProduct(0, ""))
	require.NoError(t, r.SetQuantity(0, 0))

	lines := r.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "", lines[0].ProductRef)
	assert.Equal(t, "2", lines[1].ProductRef)
}

func TestNoBoundsValidationOnQuantityAndPrice(t *testing.T) {
	r := New(testCatalog())

	require.NoError(t, r.SetQuantity(0, -4))
	assert.Equal(t, -4, r.Lines()[0].Quantity)

	require.NoError(t, r.SetUnitPrice(1, -2.5))
	assert.Equal(t, -2.5, r.Lines()[1].UnitPrice)
}

func TestEditOutOfRangeFails(t *testing.T) {
	r := New(testCatalog())

	assert.Error(t, r.SetProduct(5, "1"))
	assert.Error(t, r.SetQuantity(-1, 2))
	assert.Error(t, r.SetUnitPrice(1, 3))
}

func TestSubmissionPayloadFiltersBlankAndZeroQuantityLines(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "1"))
	require.NoError(t, r.SetQuantity(0, 2))
	require.NoError(t, r.SetProduct(1, "2")) // quantity stays zero
	require.NoError(t, r.SetProduct(2, "3"))
	require.NoError(t, r.SetQuantity(2, 1))

	items, err := r.SubmissionPayload()
	require.NoError(t, err)
	assert.Equal(t, []SubmissionItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}, items)
}

func TestSubmissionPayloadEmptyReceipt(t *testing.T) {
	r := New(testCatalog())

	_, err := r.SubmissionPayload()
	assert.ErrorIs(t, err, ErrEmptyReceipt)

	// Lines with quantity but no product do not count either.
	require.NoError(t, r.SetQuantity(0, 3))
	_, err = r.SubmissionPayload()
	assert.ErrorIs(t, err, ErrEmptyReceipt)
}

func TestSubmissionPayloadRejectsNonNumericRef(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "abc"))
	require.NoError(t, r.SetQuantity(0, 1))

	_, err := r.SubmissionPayload()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyReceipt)
}

func TestResetReturnsToInitialState(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "1"))
	require.NoError(t, r.SetQuantity(0, 2))

	r.Reset()

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Blank())
	assert.Zero(t, r.Total())
	assert.Len(t, r.Catalog(), 3, "catalog snapshot survives a reset")
}

func TestLinesReturnsACopy(t *testing.T) {
	r := New(testCatalog())
	require.NoError(t, r.SetProduct(0, "1"))

	lines := r.Lines()
	lines[0].Quantity = 99

	assert.Zero(t, r.Lines()[0].Quantity)
}
