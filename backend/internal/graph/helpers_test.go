package graph

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/stretchr/testify/assert"
)

func record(keys []string, values []interface{}) *db.Record {
	return &db.Record{Keys: keys, Values: values}
}

func TestGetStringFromRecord(t *testing.T) {
	rec := record([]string{"name", "count", "missing"}, []interface{}{"Kanpai", int64(3), nil})

	assert.Equal(t, "Kanpai", getStringFromRecord(rec, "name"))
	assert.Equal(t, "", getStringFromRecord(rec, "count"))
	assert.Equal(t, "", getStringFromRecord(rec, "missing"))
	assert.Equal(t, "", getStringFromRecord(rec, "absent"))
}

func TestGetIntFromRecord(t *testing.T) {
	rec := record([]string{"count", "name"}, []interface{}{int64(42), "Kanpai"})

	assert.Equal(t, 42, getIntFromRecord(rec, "count"))
	assert.Equal(t, 0, getIntFromRecord(rec, "name"))
	assert.Equal(t, 0, getIntFromRecord(rec, "absent"))
}

func TestGetFloat64FromRecord_AcceptsIntegers(t *testing.T) {
	rec := record([]string{"avg", "votes"}, []interface{}{4.5, int64(12)})

	assert.Equal(t, 4.5, getFloat64FromRecord(rec, "avg"))
	assert.Equal(t, 12.0, getFloat64FromRecord(rec, "votes"))
}

func TestGetStringSliceFromRecord(t *testing.T) {
	rec := record(
		[]string{"categories", "mixed", "null"},
		[]interface{}{
			[]interface{}{"Sushi", "Ramen"},
			[]interface{}{"Sushi", int64(1)},
			nil,
		},
	)

	assert.Equal(t, []string{"Sushi", "Ramen"}, getStringSliceFromRecord(rec, "categories"))
	assert.Equal(t, []string{"Sushi"}, getStringSliceFromRecord(rec, "mixed"))
	assert.Equal(t, []string{}, getStringSliceFromRecord(rec, "null"))
}

func TestGetNullableIntFromRecord(t *testing.T) {
	rec := record([]string{"cluster", "score", "null"}, []interface{}{int64(3), 0.42, nil})

	got := getNullableIntFromRecord(rec, "cluster")
	if assert.NotNil(t, got) {
		assert.Equal(t, int64(3), *got)
	}
	// A float-typed value is not a valid integer assignment.
	assert.Nil(t, getNullableIntFromRecord(rec, "score"))
	assert.Nil(t, getNullableIntFromRecord(rec, "null"))
	assert.Nil(t, getNullableIntFromRecord(rec, "absent"))
}

func TestGetNullableFloat64FromRecord(t *testing.T) {
	rec := record([]string{"score", "votes", "null"}, []interface{}{0.42, int64(7), nil})

	got := getNullableFloat64FromRecord(rec, "score")
	if assert.NotNil(t, got) {
		assert.Equal(t, 0.42, *got)
	}
	got = getNullableFloat64FromRecord(rec, "votes")
	if assert.NotNil(t, got) {
		assert.Equal(t, 7.0, *got)
	}
	assert.Nil(t, getNullableFloat64FromRecord(rec, "null"))
}

func TestGetTimeFromRecord(t *testing.T) {
	when := time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC)
	rec := record([]string{"date", "name"}, []interface{}{when, "Kanpai"})

	assert.Equal(t, when, getTimeFromRecord(rec, "date"))
	assert.True(t, getTimeFromRecord(rec, "name").IsZero())
}
