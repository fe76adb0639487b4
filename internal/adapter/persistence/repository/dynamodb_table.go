package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"parlamento/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client the repositories call.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// dynamoTable is a single table keyed by a string "id" partition key.
type dynamoTable[I any] struct {
	ddb       DynamoDBAPI
	tableName string
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func (t dynamoTable[I]) scan(ctx context.Context) ([]I, error) {
	var items []I
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

func (t dynamoTable[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// put inserts it unless the id is taken, in which case it reports
// interfaces.ErrAlreadyExists.
func (t dynamoTable[I]) put(ctx context.Context, it I) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return interfaces.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// update applies u to an existing item and returns the stored result.
// A missing item is reported as found == false.
func (t dynamoTable[I]) update(ctx context.Context, id string, u updateSet) (I, bool, error) {
	if u.empty() {
		return t.get(ctx, id)
	}

	var it I
	updateExpr, values, names := u.expression()
	out, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return it, false, nil
		}
		return it, false, err
	}
	if len(out.Attributes) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t dynamoTable[I]) delete(ctx context.Context, id string) (bool, error) {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(t.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// updateSet collects the attributes of one UpdateItem call. Every attribute
// goes through a #name placeholder since "date" is a reserved word.
type updateSet struct {
	sets    map[string]types.AttributeValue
	removes []string
}

func (u *updateSet) setS(attr, v string) {
	u.set(attr, &types.AttributeValueMemberS{Value: v})
}

func (u *updateSet) setN(attr string, v float64) {
	u.set(attr, &types.AttributeValueMemberN{Value: floatToString(v)})
}

func (u *updateSet) set(attr string, v types.AttributeValue) {
	if u.sets == nil {
		u.sets = map[string]types.AttributeValue{}
	}
	u.sets[attr] = v
}

func (u *updateSet) remove(attr string) {
	u.removes = append(u.removes, attr)
}

func (u updateSet) empty() bool {
	return len(u.sets) == 0 && len(u.removes) == 0
}

func (u updateSet) expression() (string, map[string]types.AttributeValue, map[string]string) {
	names := map[string]string{}
	var values map[string]types.AttributeValue
	var clauses []string

	if len(u.sets) > 0 {
		values = make(map[string]types.AttributeValue, len(u.sets))
		parts := make([]string, 0, len(u.sets))
		for _, attr := range sortedKeys(u.sets) {
			names["#"+attr] = attr
			values[":"+attr] = u.sets[attr]
			parts = append(parts, "#"+attr+" = :"+attr)
		}
		clauses = append(clauses, "SET "+strings.Join(parts, ", "))
	}
	if len(u.removes) > 0 {
		parts := make([]string, 0, len(u.removes))
		for _, attr := range u.removes {
			names["#"+attr] = attr
			parts = append(parts, "#"+attr)
		}
		clauses = append(clauses, "REMOVE "+strings.Join(parts, ", "))
	}
	return strings.Join(clauses, " "), values, names
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
