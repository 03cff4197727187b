package repository

import (
	"context"
	"strconv"
	"time"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPagosTableName  = "pagos"
	pagosReparacionIDIndex = "reparacion_id-index"
)

type pagoItem struct {
	ID               string `dynamodbav:"id"`
	IDReparacion     int    `dynamodbav:"reparacion_id"`
	Fecha            string `dynamodbav:"fecha"`
	Monto            string `dynamodbav:"monto"`
	Estatus          string `dynamodbav:"estatus"`
	PayloadProveedor string `dynamodbav:"payload_proveedor,omitempty"`
}

// PagoDynamoRepository persists Pago entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
//   - GSI: reparacion_id-index (PK: reparacion_id)

type PagoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPagoRepository = (*PagoDynamoRepository)(nil)

func NewPagoDynamoRepository(ddb *dynamodb.Client) *PagoDynamoRepository {
	return &PagoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGOS_TABLE", defaultPagosTableName),
	}
}

func (r *PagoDynamoRepository) Create(ctx context.Context, p entities.Pago) (entities.Pago, error) {
	av, err := attributevalue.MarshalMap(toPagoItem(p))
	if err != nil {
		return entities.Pago{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Pago{}, err
	}
	return p, nil
}

func (r *PagoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pago, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pago{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pago{}, nil
	}

	var it pagoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pago{}, err
	}
	return fromPagoItem(it), nil
}

func (r *PagoDynamoRepository) ListByReparacionID(ctx context.Context, idReparacion int) ([]entities.Pago, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pagosReparacionIDIndex),
		KeyConditionExpression: aws.String("reparacion_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberN{Value: strconv.Itoa(idReparacion)},
		},
	})
	if err != nil {
		return nil, err
	}

	pagos := make([]entities.Pago, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pagoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pagos = append(pagos, fromPagoItem(it))
	}
	return pagos, nil
}

func toPagoItem(p entities.Pago) pagoItem {
	return pagoItem{
		ID:               p.ID,
		IDReparacion:     p.IDReparacion,
		Fecha:            p.Fecha.UTC().Format(time.RFC3339Nano),
		Monto:            floatToString(p.Monto),
		Estatus:          string(p.Estatus),
		PayloadProveedor: string(p.PayloadProveedor),
	}
}

func fromPagoItem(it pagoItem) entities.Pago {
	fecha, _ := time.Parse(time.RFC3339Nano, it.Fecha)
	monto, _ := strconv.ParseFloat(it.Monto, 64)
	return entities.Pago{
		ID:               it.ID,
		IDReparacion:     it.IDReparacion,
		Fecha:            fecha,
		Monto:            monto,
		Estatus:          entities.EstatusPago(it.Estatus),
		PayloadProveedor: []byte(it.PayloadProveedor),
	}
}
