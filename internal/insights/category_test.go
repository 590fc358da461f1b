package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"Food & Dining", CategoryFoodDining},
		{"  food   &  DINING ", CategoryFoodDining},
		{"food", CategoryFoodDining},
		{"Bills and Utilities", CategoryBillsUtilities},
		{"CREDIT CARD", CategoryCreditCard},
		{"transport", CategoryTransportation},
		{"Groceries", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.label))
		})
	}
}

func TestParseSource(t *testing.T) {
	assert.Equal(t, SourceSalary, ParseSource("salary"))
	assert.Equal(t, SourceFreelance, ParseSource(" Freelance "))
	assert.Equal(t, SourceOther, ParseSource("lottery"))
}

func TestCategoryKnown(t *testing.T) {
	assert.True(t, CategoryHealthcare.Known())
	assert.False(t, Category("Groceries").Known())
}
