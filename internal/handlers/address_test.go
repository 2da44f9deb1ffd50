package handlers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The update and delete paths must match on the address id itself: a
// filter on userId alone always modifies the profile (updatedAt is set),
// so a missing address would report success instead of 404.
func TestAddressMatchRequiresAddressID(t *testing.T) {
	userID := primitive.NewObjectID()

	got := addressMatch(userID, "addr-123")
	want := bson.M{
		"userId":       userID,
		"addresses.id": "addr-123",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("addressMatch = %v, want %v", got, want)
	}
}
