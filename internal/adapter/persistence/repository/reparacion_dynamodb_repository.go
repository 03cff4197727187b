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
	defaultReparacionesTableName = "reparaciones"
	reparacionesPK               = "reparaciones"
)

type refaccionUsadaItem struct {
	IDRefaccion int    `dynamodbav:"id_refaccion"`
	Nombre      string `dynamodbav:"nombre"`
	Precio      string `dynamodbav:"precio"`
	Cantidad    int    `dynamodbav:"cantidad"`
	Descripcion string `dynamodbav:"descripcion"`
	Estatus     string `dynamodbav:"estatus,omitempty"`
}

type reparacionItem struct {
	PK            string                        `dynamodbav:"pk"`
	ID            int                           `dynamodbav:"id"`
	IDCita        int                           `dynamodbav:"id_cita"`
	IDUsuarioC    int                           `dynamodbav:"id_usuario_c"`
	IDUsuarioT    int                           `dynamodbav:"id_usuario_t"`
	IDDispositivo int                           `dynamodbav:"id_dispositivo"`
	Tipo          string                        `dynamodbav:"tipo"`
	Detalles      string                        `dynamodbav:"detalles"`
	Estatus       string                        `dynamodbav:"estatus"`
	CostoServicio string                        `dynamodbav:"costo_servicio"`
	CostoTotal    string                        `dynamodbav:"costo_total"`
	FechaInicio   string                        `dynamodbav:"fecha_inicio"`
	FechaFin      string                        `dynamodbav:"fecha_fin"`
	Refacciones   map[string]refaccionUsadaItem `dynamodbav:"refacciones"`
}

// ReparacionDynamoRepository persists Reparacion entities in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, constant "reparaciones")
//   - SK: id (number)
//
// The refacciones attribute is a map keyed by the catalog refaccion id, so
// duplicate-add and per-entry updates are single conditional item updates
// addressed through "refacciones.#rid".

type ReparacionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReparacionRepository = (*ReparacionDynamoRepository)(nil)

func NewReparacionDynamoRepository(ddb *dynamodb.Client) *ReparacionDynamoRepository {
	return &ReparacionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPARACIONES_TABLE", defaultReparacionesTableName),
	}
}

func (r *ReparacionDynamoRepository) Create(ctx context.Context, rep entities.Reparacion) (entities.Reparacion, error) {
	it := toReparacionItem(rep)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Reparacion{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reparacion{}, nil
		}
		return entities.Reparacion{}, err
	}
	return rep, nil
}

func (r *ReparacionDynamoRepository) GetByID(ctx context.Context, id int) (entities.Reparacion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claveColeccion(reparacionesPK, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reparacion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reparacion{}, nil
	}

	var it reparacionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reparacion{}, err
	}
	return fromReparacionItem(it), nil
}

func (r *ReparacionDynamoRepository) List(ctx context.Context, soloConRefacciones bool) ([]entities.Reparacion, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: reparacionesPK},
		},
	}
	if soloConRefacciones {
		input.FilterExpression = aws.String("size(#ref) > :cero")
		input.ExpressionAttributeNames = map[string]string{"#ref": "refacciones"}
		input.ExpressionAttributeValues[":cero"] = &types.AttributeValueMemberN{Value: "0"}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	reparaciones := make([]entities.Reparacion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reparacionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reparaciones = append(reparaciones, fromReparacionItem(it))
	}
	return reparaciones, nil
}

func (r *ReparacionDynamoRepository) UltimoID(ctx context.Context) (int, error) {
	return ultimoID(ctx, r.ddb, r.tableName, reparacionesPK)
}

func (r *ReparacionDynamoRepository) UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Reparacion, error) {
	expr := "SET "
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	i := 0
	for campo, valor := range campos {
		// Costs are stored as formatted strings, same as the item codec.
		if campo == "costo_servicio" || campo == "costo_total" {
			if f, ok := valor.(float64); ok {
				valor = floatToString(f)
			}
		}
		av, err := attributevalue.Marshal(valor)
		if err != nil {
			return entities.Reparacion{}, err
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
		Key:                       claveColeccion(reparacionesPK, id),
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reparacion{}, nil
		}
		return entities.Reparacion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reparacion{}, nil
	}

	var it reparacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reparacion{}, err
	}
	return fromReparacionItem(it), nil
}

func (r *ReparacionDynamoRepository) UpdateEstatus(ctx context.Context, id int, nuevo entities.EstatusReparacion) (entities.Reparacion, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(reparacionesPK, id),
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
			return entities.Reparacion{}, nil
		}
		return entities.Reparacion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reparacion{}, nil
	}

	var it reparacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reparacion{}, err
	}
	return fromReparacionItem(it), nil
}

// AddRefaccion inserts the usage entry under its own key in the refacciones
// map. The condition rejects the write atomically when the repair is missing
// or the key is already present.
func (r *ReparacionDynamoRepository) AddRefaccion(ctx context.Context, id int, uso entities.RefaccionUsada) (entities.Reparacion, error) {
	av, err := attributevalue.Marshal(toRefaccionUsadaItem(uso))
	if err != nil {
		return entities.Reparacion{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(reparacionesPK, id),
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_not_exists(#ref.#rid)"),
		UpdateExpression:    aws.String("SET #ref.#rid = :uso"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "refacciones",
			"#rid": strconv.Itoa(uso.IDRefaccion),
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uso": av,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reparacion{}, nil
		}
		return entities.Reparacion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reparacion{}, nil
	}

	var it reparacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reparacion{}, err
	}
	return fromReparacionItem(it), nil
}

// UpdateRefaccion overwrites nombre/cantidad/precio of the entry addressed by
// its map key. No positional index is involved, so concurrent edits to the
// map can never shift the target.
func (r *ReparacionDynamoRepository) UpdateRefaccion(ctx context.Context, id int, idRefaccion int, nombre string, cantidad int, precio float64) (entities.Reparacion, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(reparacionesPK, id),
		ConditionExpression: aws.String("attribute_exists(#ref.#rid)"),
		UpdateExpression:    aws.String("SET #ref.#rid.#n = :n, #ref.#rid.#c = :c, #ref.#rid.#p = :p"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "refacciones",
			"#rid": strconv.Itoa(idRefaccion),
			"#n":   "nombre",
			"#c":   "cantidad",
			"#p":   "precio",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: nombre},
			":c": &types.AttributeValueMemberN{Value: strconv.Itoa(cantidad)},
			":p": &types.AttributeValueMemberS{Value: floatToString(precio)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reparacion{}, nil
		}
		return entities.Reparacion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reparacion{}, nil
	}

	var it reparacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reparacion{}, err
	}
	return fromReparacionItem(it), nil
}

func toRefaccionUsadaItem(u entities.RefaccionUsada) refaccionUsadaItem {
	return refaccionUsadaItem{
		IDRefaccion: u.IDRefaccion,
		Nombre:      u.Nombre,
		Precio:      floatToString(u.Precio),
		Cantidad:    u.Cantidad,
		Descripcion: u.Descripcion,
		Estatus:     u.Estatus,
	}
}

func fromRefaccionUsadaItem(it refaccionUsadaItem) entities.RefaccionUsada {
	precio, _ := strconv.ParseFloat(it.Precio, 64)
	return entities.RefaccionUsada{
		IDRefaccion: it.IDRefaccion,
		Nombre:      it.Nombre,
		Precio:      precio,
		Cantidad:    it.Cantidad,
		Descripcion: it.Descripcion,
		Estatus:     it.Estatus,
	}
}

func toReparacionItem(rep entities.Reparacion) reparacionItem {
	refacciones := make(map[string]refaccionUsadaItem, len(rep.Refacciones))
	for id, uso := range rep.Refacciones {
		refacciones[strconv.Itoa(id)] = toRefaccionUsadaItem(uso)
	}
	return reparacionItem{
		PK:            reparacionesPK,
		ID:            rep.ID,
		IDCita:        rep.IDCita,
		IDUsuarioC:    rep.IDUsuarioC,
		IDUsuarioT:    rep.IDUsuarioT,
		IDDispositivo: rep.IDDispositivo,
		Tipo:          rep.Tipo,
		Detalles:      rep.Detalles,
		Estatus:       string(rep.Estatus),
		CostoServicio: floatToString(rep.CostoServicio),
		CostoTotal:    floatToString(rep.CostoTotal),
		FechaInicio:   rep.FechaInicio,
		FechaFin:      rep.FechaFin,
		Refacciones:   refacciones,
	}
}

func fromReparacionItem(it reparacionItem) entities.Reparacion {
	costoServicio, _ := strconv.ParseFloat(it.CostoServicio, 64)
	costoTotal, _ := strconv.ParseFloat(it.CostoTotal, 64)
	refacciones := make(map[int]entities.RefaccionUsada, len(it.Refacciones))
	for clave, uso := range it.Refacciones {
		id, err := strconv.Atoi(clave)
		if err != nil {
			id = uso.IDRefaccion
		}
		refacciones[id] = fromRefaccionUsadaItem(uso)
	}
	return entities.Reparacion{
		ID:            it.ID,
		IDCita:        it.IDCita,
		IDUsuarioC:    it.IDUsuarioC,
		IDUsuarioT:    it.IDUsuarioT,
		IDDispositivo: it.IDDispositivo,
		Tipo:          it.Tipo,
		Detalles:      it.Detalles,
		Estatus:       entities.EstatusReparacion(it.Estatus),
		CostoServicio: costoServicio,
		CostoTotal:    costoTotal,
		FechaInicio:   it.FechaInicio,
		FechaFin:      it.FechaFin,
		Refacciones:   refacciones,
	}
}
