package repository

import (
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// claveColeccion builds the composite key used by every collection table:
// a constant partition key naming the collection plus the numeric entity id
// as sort key. Keeping a collection in one partition is what lets the id
// allocator read the maximum with a descending query, limit one.
func claveColeccion(pk string, id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
