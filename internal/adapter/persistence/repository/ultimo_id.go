package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ultimoID resolves the highest id currently stored in a collection table by
// querying the collection partition sorted descending and taking the first
// item. Returns 0 for an empty collection. Counting documents would be wrong
// here: deletions would shrink the count back onto live ids.
func ultimoID(ctx context.Context, ddb *dynamodb.Client, tableName, pk string) (int, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
		ScanIndexForward:     aws.Bool(false),
		Limit:                aws.Int32(1),
		ProjectionExpression: aws.String("id"),
		ConsistentRead:       aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}

	var it struct {
		ID int `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.ID, nil
}
