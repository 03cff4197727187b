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
	defaultUsuariosTableName = "usuarios"
	usuariosPK               = "usuarios"
	usuariosCorreoIndex      = "correo-index"
)

type usuarioItem struct {
	PK         string `dynamodbav:"pk"`
	ID         int    `dynamodbav:"id"`
	Nombre     string `dynamodbav:"nombre"`
	Apellidos  string `dynamodbav:"apellidos"`
	Telefono   string `dynamodbav:"telefono"`
	Correo     string `dynamodbav:"correo"`
	Contrasena string `dynamodbav:"contrasena"`
	Rol        string `dynamodbav:"rol"`
}

// UsuarioDynamoRepository persists Usuario entities in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, constant "usuarios")
//   - SK: id (number)
//   - GSI: correo-index (PK: correo)

type UsuarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb *dynamodb.Client) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsuariosTableName),
	}
}

func (r *UsuarioDynamoRepository) Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	av, err := attributevalue.MarshalMap(toUsuarioItem(u))
	if err != nil {
		return entities.Usuario{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Usuario{}, nil
		}
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id int) (entities.Usuario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claveColeccion(usuariosPK, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) GetByCorreo(ctx context.Context, correo string) (entities.Usuario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usuariosCorreoIndex),
		KeyConditionExpression: aws.String("correo = :correo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":correo": &types.AttributeValueMemberS{Value: correo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Items) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) List(ctx context.Context) ([]entities.Usuario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: usuariosPK},
		},
	})
	if err != nil {
		return nil, err
	}

	usuarios := make([]entities.Usuario, 0, len(out.Items))
	for _, raw := range out.Items {
		var it usuarioItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, fromUsuarioItem(it))
	}
	return usuarios, nil
}

func (r *UsuarioDynamoRepository) UpdateCampos(ctx context.Context, id int, campos map[string]interface{}) (entities.Usuario, error) {
	expr := "SET "
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	i := 0
	for campo, valor := range campos {
		av, err := attributevalue.Marshal(valor)
		if err != nil {
			return entities.Usuario{}, err
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
		Key:                       claveColeccion(usuariosPK, id),
		ConditionExpression:       aws.String("attribute_exists(pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Usuario{}, nil
		}
		return entities.Usuario{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) Delete(ctx context.Context, id int) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 claveColeccion(usuariosPK, id),
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

func toUsuarioItem(u entities.Usuario) usuarioItem {
	return usuarioItem{
		PK:         usuariosPK,
		ID:         u.ID,
		Nombre:     u.Nombre,
		Apellidos:  u.Apellidos,
		Telefono:   u.Telefono,
		Correo:     u.Correo,
		Contrasena: u.Contrasena,
		Rol:        string(u.Rol),
	}
}

func fromUsuarioItem(it usuarioItem) entities.Usuario {
	return entities.Usuario{
		ID:         it.ID,
		Nombre:     it.Nombre,
		Apellidos:  it.Apellidos,
		Telefono:   it.Telefono,
		Correo:     it.Correo,
		Contrasena: it.Contrasena,
		Rol:        entities.RolUsuario(it.Rol),
	}
}
