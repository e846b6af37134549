package mongotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsertOne_ReturnsDocumentID(t *testing.T) {
	coll := NewDatabase().C("recordings")
	id := primitive.NewObjectID()

	got, err := coll.InsertOne(context.Background(), bson.M{"_id": id, "title": "Cats"})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	generated, err := coll.InsertOne(context.Background(), bson.M{"title": "Evita"})
	require.NoError(t, err)
	assert.False(t, generated.(primitive.ObjectID).IsZero())

	require.Len(t, coll.Docs, 2)
	assert.Equal(t, "Cats", coll.Docs[0].Lookup("title").StringValue())
}
