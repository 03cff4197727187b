package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRefaccionesTableName = "refacciones"
	refaccionesPK               = "refacciones"
)

type refaccionItem struct {
	PK          string `dynamodbav:"pk"`
	ID          int    `dynamodbav:"id"`
	Nombre      string `dynamodbav:"nombre"`
	Cantidad    int    `dynamodbav:"cantidad"`
	Precio      string `dynamodbav:"precio"`
	Descripcion string `dynamodbav:"descripcion"`
}

// RefaccionDynamoRepository persists the spare-part catalog in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, constant "refacciones")
//   - SK: id (number)
type RefaccionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRefaccionRepository = (*RefaccionDynamoRepository)(nil)

func NewRefaccionDynamoRepository(ddb *dynamodb.Client) *RefaccionDynamoRepository {
	return &RefaccionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFACCIONES_TABLE", defaultRefaccionesTableName),
	}
}

func (r *RefaccionDynamoRepository) Create(ctx context.Context, ref entities.Refaccion) (entities.Refaccion, error) {
	av, err := attributevalue.MarshalMap(toRefaccionItem(ref))
	if err != nil {
		return entities.Refaccion{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Refaccion{}, nil
		}
		return entities.Refaccion{}, err
	}
	return ref, nil
}

func (r *RefaccionDynamoRepository) GetByID(ctx context.Context, id int) (entities.Refaccion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claveColeccion(refaccionesPK, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Refaccion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Refaccion{}, nil
	}

	var it refaccionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Refaccion{}, err
	}
	return fromRefaccionItem(it), nil
}

// List projects only the public attributes; the internal pk never leaves the
// repository.
func (r *RefaccionDynamoRepository) List(ctx context.Context) ([]entities.Refaccion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: refaccionesPK},
		},
		ProjectionExpression: aws.String("id, nombre, cantidad, precio, descripcion"),
	})
	if err != nil {
		return nil, err
	}

	refacciones := make([]entities.Refaccion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it refaccionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		refacciones = append(refacciones, fromRefaccionItem(it))
	}
	return refacciones, nil
}

func (r *RefaccionDynamoRepository) UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Refaccion, error) {
	expr := "SET "
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	i := 0
	for campo, valor := range campos {
		if campo == "precio" {
			if f, ok := valor.(float64); ok {
				valor = floatToString(f)
			}
		}
		av, err := attributevalue.Marshal(valor)
		if err != nil {
			return entities.Refaccion{}, err
		}
		alias := fmt.Sprintf("#c%d", i)
		marcador := fmt.Sprintf(":v%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += alias + " = " + marcador
		names[alias] = campo
		values[marcador] = av
		i++
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       claveColeccion(refaccionesPK, id),
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Refaccion{}, nil
		}
		return entities.Refaccion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Refaccion{}, nil
	}

	var it refaccionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Refaccion{}, err
	}
	return fromRefaccionItem(it), nil
}

func (r *RefaccionDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(refaccionesPK, id),
		ConditionExpression: aws.String("attribute_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toRefaccionItem(ref entities.Refaccion) refaccionItem {
	return refaccionItem{
		PK:          refaccionesPK,
		ID:          ref.ID,
		Nombre:      ref.Nombre,
		Cantidad:    ref.Cantidad,
		Precio:      floatToString(ref.Precio),
		Descripcion: ref.Descripcion,
	}
}

func fromRefaccionItem(it refaccionItem) entities.Refaccion {
	precio, _ := strconv.ParseFloat(it.Precio, 64)
	return entities.Refaccion{
		ID:          it.ID,
		Nombre:      it.Nombre,
		Cantidad:    it.Cantidad,
		Precio:      precio,
		Descripcion: it.Descripcion,
	}
}
