package repository

import (
	"context"
	"errors"
	"fmt"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDispositivosTableName = "dispositivos"
	dispositivosPK               = "dispositivos"
)

type dispositivoItem struct {
	PK               string `dynamodbav:"pk"`
	ID               int    `dynamodbav:"id"`
	Marca            string `dynamodbav:"marca"`
	Modelo           string `dynamodbav:"modelo"`
	Caracteristicas  string `dynamodbav:"caracteristicas"`
	FallasReportadas string `dynamodbav:"fallas_reportadas"`
	Foto             string `dynamodbav:"foto,omitempty"`
}

// DispositivoDynamoRepository persists the standalone device catalog in
// DynamoDB.
//
// Table requirements:
//   - PK: pk (string, constant "dispositivos")
//   - SK: id (number)
type DispositivoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDispositivoRepository = (*DispositivoDynamoRepository)(nil)

func NewDispositivoDynamoRepository(ddb *dynamodb.Client) *DispositivoDynamoRepository {
	return &DispositivoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISPOSITIVOS_TABLE", defaultDispositivosTableName),
	}
}

func (r *DispositivoDynamoRepository) Create(ctx context.Context, d entities.Dispositivo) (entities.Dispositivo, error) {
	av, err := attributevalue.MarshalMap(toDispositivoItem(d))
	if err != nil {
		return entities.Dispositivo{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Dispositivo{}, nil
		}
		return entities.Dispositivo{}, err
	}
	return d, nil
}

func (r *DispositivoDynamoRepository) GetByID(ctx context.Context, id int) (entities.Dispositivo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claveColeccion(dispositivosPK, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dispositivo{}, err
	}
	if len(out.Item) == 0 {
		return entities.Dispositivo{}, nil
	}

	var it dispositivoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Dispositivo{}, err
	}
	return fromDispositivoItem(it), nil
}

func (r *DispositivoDynamoRepository) List(ctx context.Context) ([]entities.Dispositivo, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: dispositivosPK},
		},
	})
	if err != nil {
		return nil, err
	}

	dispositivos := make([]entities.Dispositivo, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dispositivoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		dispositivos = append(dispositivos, fromDispositivoItem(it))
	}
	return dispositivos, nil
}

func (r *DispositivoDynamoRepository) UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Dispositivo, error) {
	expr := "SET "
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	i := 0
	for campo, valor := range campos {
		av, err := attributevalue.Marshal(valor)
		if err != nil {
			return entities.Dispositivo{}, err
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
		Key:                       claveColeccion(dispositivosPK, id),
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Dispositivo{}, nil
		}
		return entities.Dispositivo{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Dispositivo{}, nil
	}

	var it dispositivoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Dispositivo{}, err
	}
	return fromDispositivoItem(it), nil
}

func (r *DispositivoDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(dispositivosPK, id),
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

func toDispositivoItem(d entities.Dispositivo) dispositivoItem {
	return dispositivoItem{
		PK:               dispositivosPK,
		ID:               d.ID,
		Marca:            d.Marca,
		Modelo:           d.Modelo,
		Caracteristicas:  d.Caracteristicas,
		FallasReportadas: d.FallasReportadas,
		Foto:             d.Foto,
	}
}

func fromDispositivoItem(it dispositivoItem) entities.Dispositivo {
	return entities.Dispositivo{
		ID:               it.ID,
		Marca:            it.Marca,
		Modelo:           it.Modelo,
		Caracteristicas:  it.Caracteristicas,
		FallasReportadas: it.FallasReportadas,
		Foto:             it.Foto,
	}
}
