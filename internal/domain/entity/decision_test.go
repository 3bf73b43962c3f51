package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionRecord_JSONUsesNames(t *testing.T) {
	rec := DecisionRecord{
		ID:        3,
		Target:    "fave://item/1?utm_source=x",
		Canonical: "fave://item/1",
		Class:     ClassInternal,
		Decision:  DecisionCancel,
		Route:     "item",
		DecidedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"class":"internal"`)
	assert.Contains(t, string(data), `"decision":"cancel"`)

	var back DecisionRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}
