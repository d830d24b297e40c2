package dynamo

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

// Item is a flat attribute map as stored in a table.
type Item = map[string]types.AttributeValue

func S(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func BOOL(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

// StringAttr returns the S value under key, or "" when the attribute is
// missing or holds another type.
func StringAttr(item Item, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// BoolAttr returns the BOOL value under key, or false when the attribute is
// missing or holds another type.
func BoolAttr(item Item, key string) bool {
	if v, ok := item[key].(*types.AttributeValueMemberBOOL); ok {
		return v.Value
	}
	return false
}

// Key builds the primary-key map for a table keyed by a string "id".
func Key(id string) Item {
	return Item{"id": S(id)}
}
