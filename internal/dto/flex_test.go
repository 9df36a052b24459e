package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool(t *testing.T) {
	type TestCase struct {
		Name     string
		JSON     string
		Expected bool
	}

	testCases := []TestCase{
		{Name: "Boolean true", JSON: `{"availability": true}`, Expected: true},
		{Name: "Boolean false", JSON: `{"availability": false}`, Expected: false},
		{Name: "In Stock text", JSON: `{"availability": "In Stock"}`, Expected: true},
		{Name: "In Stock text lowercase", JSON: `{"availability": "in stock"}`, Expected: true},
		{Name: "Out of Stock text", JSON: `{"availability": "Out of Stock"}`, Expected: false},
		{Name: "Unrelated text", JSON: `{"availability": "maybe"}`, Expected: false},
		{Name: "Number", JSON: `{"availability": 1}`, Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var payload struct {
				Availability *FlexBool `json:"availability"`
			}

			err := json.Unmarshal([]byte(tc.JSON), &payload)
			require.NoError(t, err)
			require.NotNil(t, payload.Availability)
			assert.Equal(t, tc.Expected, bool(*payload.Availability))
		})
	}
}

func TestFlexBoolAbsent(t *testing.T) {
	var payload struct {
		Availability *FlexBool `json:"availability"`
	}

	err := json.Unmarshal([]byte(`{}`), &payload)
	require.NoError(t, err)
	assert.Nil(t, payload.Availability)
}

func TestFlexFloat(t *testing.T) {
	type TestCase struct {
		Name     string
		JSON     string
		Expected float64
	}

	testCases := []TestCase{
		{Name: "Number", JSON: `{"average_rating": 4.5}`, Expected: 4.5},
		{Name: "Numeric string", JSON: `{"average_rating": "3.2"}`, Expected: 3.2},
		{Name: "Invalid string", JSON: `{"average_rating": "great"}`, Expected: 0},
		{Name: "Null", JSON: `{"average_rating": null}`, Expected: 0},
		{Name: "Missing", JSON: `{}`, Expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var payload struct {
				AverageRating FlexFloat `json:"average_rating"`
			}

			err := json.Unmarshal([]byte(tc.JSON), &payload)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, float64(payload.AverageRating))
		})
	}
}

func TestFlexInt(t *testing.T) {
	type TestCase struct {
		Name     string
		JSON     string
		Expected int64
	}

	testCases := []TestCase{
		{Name: "Number", JSON: `{"number_of_reviews": 12}`, Expected: 12},
		{Name: "Fractional number", JSON: `{"number_of_reviews": 12.7}`, Expected: 12},
		{Name: "Numeric string", JSON: `{"number_of_reviews": "42"}`, Expected: 42},
		{Name: "Invalid string", JSON: `{"number_of_reviews": "many"}`, Expected: 0},
		{Name: "Missing", JSON: `{}`, Expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var payload struct {
				NumberOfReviews FlexInt `json:"number_of_reviews"`
			}

			err := json.Unmarshal([]byte(tc.JSON), &payload)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, int64(payload.NumberOfReviews))
		})
	}
}
