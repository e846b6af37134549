package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// DocumentRef 旧版文档引用（DBRef 结构），仅为兼容历史数据保留
type DocumentRef struct {
	Collection string             `bson:"$ref" json:"collection"`
	ID         primitive.ObjectID `bson:"$id" json:"id"`
}

func NewDocumentRef(collection string, id primitive.ObjectID) DocumentRef {
	return DocumentRef{Collection: collection, ID: id}
}

// RefIDs 从引用数组中提取 ID（十六进制字符串）
func RefIDs(refs []DocumentRef) []string {
	if refs == nil {
		return nil
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.ID.IsZero() {
			continue
		}
		ids = append(ids, ref.ID.Hex())
	}
	return ids
}
