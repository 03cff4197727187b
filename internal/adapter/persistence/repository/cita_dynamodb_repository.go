package repository

import (
	"context"
	"errors"
	"time"

	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCitasTableName = "citas"
	citasPK               = "citas"
)

type dispositivoCitaItem struct {
	ID               int    `dynamodbav:"id_dispositivo"`
	Marca            string `dynamodbav:"marca"`
	Modelo           string `dynamodbav:"modelo"`
	Caracteristicas  string `dynamodbav:"caracteristicas"`
	FallasReportadas string `dynamodbav:"fallas_reportadas"`
	Foto             string `dynamodbav:"foto,omitempty"`
}

type citaItem struct {
	PK            string                `dynamodbav:"pk"`
	ID            int                   `dynamodbav:"id"`
	FechaRegistro string                `dynamodbav:"fecha_registro"`
	FechaEntrega  string                `dynamodbav:"fecha_entrega"`
	Motivo        string                `dynamodbav:"motivo"`
	Hora          string                `dynamodbav:"hora"`
	Estatus       string                `dynamodbav:"estatus"`
	IDUsuarioC    int                   `dynamodbav:"id_usuario_c"`
	IDUsuarioT    int                   `dynamodbav:"id_usuario_t"`
	Dispositivos  []dispositivoCitaItem `dynamodbav:"dispositivos"`
}

// CitaDynamoRepository persists Cita entities in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, constant "citas")
//   - SK: id (number)

type CitaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICitaRepository = (*CitaDynamoRepository)(nil)

func NewCitaDynamoRepository(ddb *dynamodb.Client) *CitaDynamoRepository {
	return &CitaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CITAS_TABLE", defaultCitasTableName),
	}
}

func (r *CitaDynamoRepository) Create(ctx context.Context, c entities.Cita) (entities.Cita, error) {
	it := toCitaItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Cita{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cita{}, nil
		}
		return entities.Cita{}, err
	}
	return c, nil
}

func (r *CitaDynamoRepository) GetByID(ctx context.Context, id int) (entities.Cita, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claveColeccion(citasPK, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cita{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cita{}, nil
	}

	var it citaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cita{}, err
	}
	return fromCitaItem(it), nil
}

func (r *CitaDynamoRepository) List(ctx context.Context) ([]entities.Cita, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: citasPK},
		},
	})
	if err != nil {
		return nil, err
	}

	citas := make([]entities.Cita, 0, len(out.Items))
	for _, raw := range out.Items {
		var it citaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		citas = append(citas, fromCitaItem(it))
	}
	return citas, nil
}

func (r *CitaDynamoRepository) UltimoID(ctx context.Context) (int, error) {
	return ultimoID(ctx, r.ddb, r.tableName, citasPK)
}

// UpdateEstatus sets the status only when the item exists and the stored
// status still differs from nuevo: the losing side of a concurrent transition
// gets the zero value back instead of overwriting.
func (r *CitaDynamoRepository) UpdateEstatus(ctx context.Context, id int, nuevo entities.EstatusCita) (entities.Cita, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(citasPK, id),
		ConditionExpression: aws.String("attribute_exists(pk) AND #estatus <> :nuevo"),
		UpdateExpression:    aws.String("SET #estatus = :nuevo"),
		ExpressionAttributeNames: map[string]string{
			"#estatus": "estatus",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nuevo": &types.AttributeValueMemberS{Value: string(nuevo)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cita{}, nil
		}
		return entities.Cita{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cita{}, nil
	}

	var it citaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Cita{}, err
	}
	return fromCitaItem(it), nil
}

func (r *CitaDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(citasPK, id),
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

func toCitaItem(c entities.Cita) citaItem {
	dispositivos := make([]dispositivoCitaItem, 0, len(c.Dispositivos))
	for _, d := range c.Dispositivos {
		dispositivos = append(dispositivos, dispositivoCitaItem{
			ID:               d.ID,
			Marca:            d.Marca,
			Modelo:           d.Modelo,
			Caracteristicas:  d.Caracteristicas,
			FallasReportadas: d.FallasReportadas,
			Foto:             d.Foto,
		})
	}
	return citaItem{
		PK:            citasPK,
		ID:            c.ID,
		FechaRegistro: c.FechaRegistro.UTC().Format(time.RFC3339Nano),
		FechaEntrega:  c.FechaEntrega.UTC().Format(time.RFC3339Nano),
		Motivo:        c.Motivo,
		Hora:          c.Hora,
		Estatus:       string(c.Estatus),
		IDUsuarioC:    c.IDUsuarioC,
		IDUsuarioT:    c.IDUsuarioT,
		Dispositivos:  dispositivos,
	}
}

func fromCitaItem(it citaItem) entities.Cita {
	fechaRegistro, _ := time.Parse(time.RFC3339Nano, it.FechaRegistro)
	fechaEntrega, _ := time.Parse(time.RFC3339Nano, it.FechaEntrega)
	dispositivos := make([]entities.DispositivoCita, 0, len(it.Dispositivos))
	for _, d := range it.Dispositivos {
		dispositivos = append(dispositivos, entities.DispositivoCita{
			ID:               d.ID,
			Marca:            d.Marca,
			Modelo:           d.Modelo,
			Caracteristicas:  d.Caracteristicas,
			FallasReportadas: d.FallasReportadas,
			Foto:             d.Foto,
		})
	}
	return entities.Cita{
		ID:            it.ID,
		FechaRegistro: fechaRegistro,
		FechaEntrega:  fechaEntrega,
		Motivo:        it.Motivo,
		Hora:          it.Hora,
		Estatus:       entities.EstatusCita(it.Estatus),
		IDUsuarioC:    it.IDUsuarioC,
		IDUsuarioT:    it.IDUsuarioT,
		Dispositivos:  dispositivos,
	}
}
