package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCollectionNames(t *testing.T) {
	assert.Equal(t, "admins", AdminDocument{}.CollectionName())
	assert.Equal(t, "drivers", DriverDocument{}.CollectionName())
	assert.Equal(t, "users", UserDocument{}.CollectionName())
	assert.Equal(t, "bins", BinDocument{}.CollectionName())
	assert.Equal(t, "complaints", ComplaintDocument{}.CollectionName())
	assert.Equal(t, "works", WorkDocument{}.CollectionName())
}

func TestBinDocument_IsLocated(t *testing.T) {
	lat, lon := 12.9, 77.6
	assert.False(t, (&BinDocument{}).IsLocated())
	assert.False(t, (&BinDocument{Latitude: &lat}).IsLocated())
	assert.True(t, (&BinDocument{Latitude: &lat, Longitude: &lon}).IsLocated())
}

func TestDocuments_FieldLayout(t *testing.T) {
	t.Run("driver code is stored as id", func(t *testing.T) {
		raw, err := bson.Marshal(DriverDocument{Code: "DRV-9"})
		assert.NoError(t, err)

		var m bson.M
		assert.NoError(t, bson.Unmarshal(raw, &m))
		assert.Equal(t, "DRV-9", m["id"])
		_, hasObjectID := m["_id"]
		assert.False(t, hasObjectID, "zero ObjectID is omitted")
	})

	t.Run("cleared reset token is stored as null", func(t *testing.T) {
		raw, err := bson.Marshal(UserDocument{Email: "u@example.com"})
		assert.NoError(t, err)

		var m bson.M
		assert.NoError(t, bson.Unmarshal(raw, &m))
		v, ok := m["resetToken"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})
}
