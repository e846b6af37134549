package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Recording Collection
	recordingCollection := db.Collection(domain.CollectionRecordings)
	createIndex(ctx, recordingCollection, bson.D{{Key: "date_added", Value: -1}, {Key: "_id", Value: -1}}, "date_added_id_compound", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}, "title_id_compound", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "theatre_id", Value: 1}}, "theatre_id", false)
	// 角色关系索引（新字段与旧引用字段都要覆盖）
	createIndex(ctx, recordingCollection, bson.D{{Key: "artist_ids", Value: 1}}, "artist_ids", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "composer_ids", Value: 1}}, "composer_ids", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "lyricist_ids", Value: 1}}, "lyricist_ids", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "artist_refs.$id", Value: 1}}, "artist_refs_id", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "composer_refs.$id", Value: 1}}, "composer_refs_id", false)
	createIndex(ctx, recordingCollection, bson.D{{Key: "lyricist_refs.$id", Value: 1}}, "lyricist_refs_id", false)

	// People Collection
	peopleCollection := db.Collection(domain.CollectionPeople)
	createIndex(ctx, peopleCollection, bson.D{{Key: "name", Value: 1}}, "name", false)
	createIndex(ctx, peopleCollection, bson.D{{Key: "date_added", Value: -1}, {Key: "_id", Value: -1}}, "date_added_id_compound", false)

	// Theatre Collection
	theatreCollection := db.Collection(domain.CollectionTheatres)
	createIndex(ctx, theatreCollection, bson.D{{Key: "name", Value: 1}, {Key: "city", Value: 1}}, "name_city_compound", false)

	// Users Collection - 邮箱为查找键
	userCollection := db.Collection(domain.CollectionUsers)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email_unique", true)
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Warn().Err(err).Str("index", name).Msg("创建索引失败")
	} else {
		log.Debug().Str("index", name).Msg("索引创建成功")
	}
}
