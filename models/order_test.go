package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClothItemsTotal(t *testing.T) {
	breakdown := ClothItems{Tshirt: 2, Trousers: 1, Bedsheet: 1, Shirt: 1}
	assert.Equal(t, 5, breakdown.Total())
	assert.Equal(t, 0, ClothItems{}.Total())
}

func TestStatusVocabularies(t *testing.T) {
	assert.True(t, ValidOrderStatus("pending"))
	assert.True(t, ValidOrderStatus("completed"))
	assert.False(t, ValidOrderStatus("shipped"))

	assert.True(t, ActiveOrderStatus("ready"))
	assert.False(t, ActiveOrderStatus("completed"))

	assert.True(t, ValidLostItemStatus("claimed"))
	assert.False(t, ValidLostItemStatus("archived"))

	assert.True(t, ValidComplaintStatus("in-progress"))
	assert.False(t, ValidComplaintStatus("closed"))

	assert.True(t, ValidLostItemType("sweater"))
	assert.True(t, ValidLostItemType("other"))
	assert.False(t, ValidLostItemType("hoodie"))

	assert.True(t, ValidComplaintIssueType("late"))
	assert.False(t, ValidComplaintIssueType("refund"))
}
