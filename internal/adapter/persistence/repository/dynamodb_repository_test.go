package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDynamo answers each call with the configured function and records the
// last input it saw.
type stubDynamo struct {
	putFn    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getFn    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateFn func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteFn func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	scanFn   func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)

	lastUpdate *dynamodb.UpdateItemInput
	getCalls   int
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return s.putFn(in)
}

func (s *stubDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.getCalls++
	return s.getFn(in)
}

func (s *stubDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.lastUpdate = in
	return s.updateFn(in)
}

func (s *stubDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return s.deleteFn(in)
}

func (s *stubDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return s.scanFn(in)
}

func marshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestUpdateSet_Expression(t *testing.T) {
	t.Run("entry resources written as four attributes", func(t *testing.T) {
		law := "Lei"
		u := parliamentEntryUpdate(entities.ParliamentEntryPatch{
			Law:       &law,
			Resources: &entities.Resources{Cash: 5},
		})

		expr, values, names := u.expression()
		assert.Equal(t, "SET #bbl = :bbl, #cash = :cash, #gold = :gold, #kg = :kg, #law = :law", expr)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, values[":cash"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "0"}, values[":kg"])
		assert.Equal(t, "law", names["#law"])
	})

	t.Run("date goes through a name placeholder", func(t *testing.T) {
		d := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
		expr, values, names := parliamentEntryUpdate(entities.ParliamentEntryPatch{Date: &d}).expression()
		assert.Equal(t, "SET #date = :date", expr)
		assert.Equal(t, "date", names["#date"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-02-03T04:05:06.000Z"}, values[":date"])
	})

	t.Run("cleared last fetched is removed", func(t *testing.T) {
		off := false
		expr, values, names := dataSourceUpdate(entities.DataSourcePatch{Active: &off, ClearLastFetched: true}).expression()
		assert.Equal(t, "SET #active = :active REMOVE #lastFetched", expr)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "0"}, values[":active"])
		assert.Equal(t, "lastFetched", names["#lastFetched"])
	})

	t.Run("cleared law url is removed", func(t *testing.T) {
		expr, values, names := parliamentEntryUpdate(entities.ParliamentEntryPatch{ClearLawURL: true}).expression()
		assert.Equal(t, "REMOVE #lawUrl", expr)
		assert.Empty(t, values)
		assert.Equal(t, "lawUrl", names["#lawUrl"])
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.True(t, autonomousRegionUpdate(entities.AutonomousRegionPatch{}).empty())
	})
}

func TestParliamentEntryDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()
	entry := entities.ParliamentEntry{ID: "e-1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Law: "Lei"}

	t.Run("puts with not-exists condition", func(t *testing.T) {
		var got *dynamodb.PutItemInput
		ddb := &stubDynamo{putFn: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			got = in
			return &dynamodb.PutItemOutput{}, nil
		}}
		repo := NewParliamentEntryDynamoRepository(ddb, "entries")

		created, err := repo.Create(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, entry, created)
		assert.Equal(t, "entries", aws.ToString(got.TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(got.ConditionExpression))
		_, hasLawURL := got.Item["lawUrl"]
		assert.False(t, hasLawURL)
	})

	t.Run("duplicate id", func(t *testing.T) {
		ddb := &stubDynamo{putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		_, err := NewParliamentEntryDynamoRepository(ddb, "entries").Create(ctx, entry)
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})
}

func TestParliamentEntryDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored item", func(t *testing.T) {
		stored := parliamentEntryItem{ID: "e-1", Date: "2024-01-01T00:00:00.000Z", Law: "Nova", Cash: 7}
		ddb := &stubDynamo{updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: marshal(t, stored)}, nil
		}}
		law := "Nova"
		got, err := NewParliamentEntryDynamoRepository(ddb, "entries").Update(ctx, "e-1", entities.ParliamentEntryPatch{Law: &law})
		require.NoError(t, err)
		assert.Equal(t, "Nova", got.Law)
		assert.Equal(t, 7.0, got.Resources.Cash)
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.lastUpdate.ConditionExpression))
		assert.Equal(t, types.ReturnValueAllNew, ddb.lastUpdate.ReturnValues)
		assert.Equal(t, "id", ddb.lastUpdate.ExpressionAttributeNames["#id"])
	})

	t.Run("missing item", func(t *testing.T) {
		ddb := &stubDynamo{updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		law := "x"
		got, err := NewParliamentEntryDynamoRepository(ddb, "entries").Update(ctx, "nope", entities.ParliamentEntryPatch{Law: &law})
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("empty patch reads instead of writing", func(t *testing.T) {
		ddb := &stubDynamo{getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshal(t, parliamentEntryItem{ID: "e-1"})}, nil
		}}
		got, err := NewParliamentEntryDynamoRepository(ddb, "entries").Update(ctx, "e-1", entities.ParliamentEntryPatch{})
		require.NoError(t, err)
		assert.Equal(t, "e-1", got.ID)
		assert.Equal(t, 1, ddb.getCalls)
		assert.Nil(t, ddb.lastUpdate)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		ddb := &stubDynamo{updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, boom
		}}
		law := "x"
		_, err := NewParliamentEntryDynamoRepository(ddb, "entries").Update(ctx, "e-1", entities.ParliamentEntryPatch{Law: &law})
		assert.ErrorIs(t, err, boom)
	})
}

func TestParliamentEntryDynamoRepository_ListSorted(t *testing.T) {
	ddb := &stubDynamo{scanFn: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
			marshal(t, parliamentEntryItem{ID: "b", Date: "2024-01-02T00:00:00.000Z"}),
			marshal(t, parliamentEntryItem{ID: "c", Date: "2024-01-01T00:00:00.000Z"}),
			marshal(t, parliamentEntryItem{ID: "a", Date: "2024-01-02T00:00:00.000Z"}),
		}}, nil
	}}

	items, err := NewParliamentEntryDynamoRepository(ddb, "entries").List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestDataSourceDynamoRepository_Delete(t *testing.T) {
	ctx := context.Background()

	ddb := &stubDynamo{deleteFn: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value == "missing" {
			return nil, &types.ConditionalCheckFailedException{}
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}}
	repo := NewDataSourceDynamoRepository(ddb, "sources")

	found, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDataSourceItem_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	in := entities.DataSource{ID: "1", URL: "u", Description: "d", Active: true, LastFetched: &now}

	it := toDataSourceItem(in)
	assert.Equal(t, 1, it.Active)
	require.NotNil(t, it.LastFetched)

	out := fromDataSourceItem(it)
	assert.True(t, out.Active)
	require.NotNil(t, out.LastFetched)
	assert.True(t, out.LastFetched.Equal(now))
}
