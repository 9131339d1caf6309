package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance_tracker/internal/domain"
)

func TestValidateCreateCash(t *testing.T) {
	data, ferr := ValidateCreate(CreateInput{
		Title:    "HDFC Bank",
		Category: "CASH",
		Balance:  "5000",
	})
	require.Nil(t, ferr)
	require.NotNil(t, data)
	assert.Equal(t, "HDFC Bank", data.Title)
	assert.Equal(t, domain.CategoryCash, data.Category)
	assert.Equal(t, float64(5000), data.Balance)
	assert.Nil(t, data.Bill)
	assert.Nil(t, data.Due)
}

func TestValidateCreateCredit(t *testing.T) {
	data, ferr := ValidateCreate(CreateInput{
		Title:    "HDFC Credit Card",
		Category: "CREDIT",
		Balance:  "0",
		Bill:     "5",
		Due:      "20",
	})
	require.Nil(t, ferr)
	require.NotNil(t, data.Bill)
	require.NotNil(t, data.Due)
	assert.Equal(t, 5, *data.Bill)
	assert.Equal(t, 20, *data.Due)
}

func TestValidateCreateCreditRequiresBillAndDue(t *testing.T) {
	data, ferr := ValidateCreate(CreateInput{
		Title:    "HDFC Credit Card",
		Category: "CREDIT",
		Balance:  "100",
	})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	// Both fields are checked independently and reported together
	assert.Equal(t, []string{"Required"}, ferr["bill"])
	assert.Equal(t, []string{"Required"}, ferr["due"])
}

func TestValidateCreateZeroDayCountsAsMissing(t *testing.T) {
	_, ferr := ValidateCreate(CreateInput{
		Title:    "Amex",
		Category: "CREDIT",
		Balance:  "0",
		Bill:     "0",
		Due:      "20",
	})
	require.NotNil(t, ferr)
	assert.Equal(t, []string{"Required"}, ferr["bill"])
	assert.NotContains(t, ferr, "due")
}

func TestValidateCreateRejections(t *testing.T) {
	tests := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{"non-numeric balance", CreateInput{Title: "HDFC Bank", Category: "CASH", Balance: "abc"}, "balance"},
		{"negative balance", CreateInput{Title: "HDFC Bank", Category: "CASH", Balance: "-5"}, "balance"},
		{"missing balance", CreateInput{Title: "HDFC Bank", Category: "CASH"}, "balance"},
		{"title too short", CreateInput{Title: "A", Category: "CASH", Balance: "10"}, "title"},
		{"missing title", CreateInput{Category: "CASH", Balance: "10"}, "title"},
		{"unknown category", CreateInput{Title: "HDFC Bank", Category: "LOAN", Balance: "10"}, "category"},
		{"bill out of range", CreateInput{Title: "Amex", Category: "CREDIT", Balance: "0", Bill: "32", Due: "20"}, "bill"},
		{"non-numeric due", CreateInput{Title: "Amex", Category: "CREDIT", Balance: "0", Bill: "5", Due: "soon"}, "due"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ferr := ValidateCreate(tt.in)
			assert.Nil(t, data)
			require.NotNil(t, ferr)
			assert.Contains(t, ferr, tt.field)
		})
	}
}

func TestValidateCreateTitleTooLong(t *testing.T) {
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	data, ferr := ValidateCreate(CreateInput{Title: string(long), Category: "CASH", Balance: "10"})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	assert.Contains(t, ferr, "title")
}

func TestValidateUpdate(t *testing.T) {
	data, ferr := ValidateUpdate(UpdateInput{
		ID:       "7",
		Title:    "HDFC Savings",
		Category: "CREDIT",
		Bill:     "5",
		Due:      "20",
	})
	require.Nil(t, ferr)
	assert.Equal(t, uint(7), data.ID)
	assert.Equal(t, "HDFC Savings", data.Title)
	require.NotNil(t, data.Bill)
	assert.Equal(t, 5, *data.Bill)
}

func TestValidateUpdateRequiresID(t *testing.T) {
	data, ferr := ValidateUpdate(UpdateInput{Title: "HDFC Savings", Category: "CASH"})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	assert.Equal(t, []string{"Required"}, ferr["id"])
}

func TestValidateUpdateCreditCrossField(t *testing.T) {
	data, ferr := ValidateUpdate(UpdateInput{ID: "7", Title: "Amex", Category: "CREDIT"})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	assert.Equal(t, []string{"Required"}, ferr["bill"])
	assert.Equal(t, []string{"Required"}, ferr["due"])
}

func TestValidateDelete(t *testing.T) {
	data, ferr := ValidateDelete(DeleteInput{ID: "3"})
	require.Nil(t, ferr)
	assert.Equal(t, uint(3), data.ID)

	data, ferr = ValidateDelete(DeleteInput{})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	assert.Contains(t, ferr, "id")

	data, ferr = ValidateDelete(DeleteInput{ID: "abc"})
	assert.Nil(t, data)
	require.NotNil(t, ferr)
	assert.Equal(t, []string{"Invalid identifier."}, ferr["id"])
}
