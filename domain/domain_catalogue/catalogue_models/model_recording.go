package catalogue_models

import (
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recording struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	ImageURL      string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Info          string             `bson:"info,omitempty" json:"info,omitempty"`
	OneDriveLink  string             `bson:"one_drive_link,omitempty" json:"oneDriveLink,omitempty"`
	GalleryImages []string           `bson:"gallery_images,omitempty" json:"galleryImages,omitempty"`
	ReleaseYear   int                `bson:"release_year,omitempty" json:"releaseYear,omitempty"`
	RecordingDate *time.Time         `bson:"recording_date,omitempty" json:"recordingDate,omitempty"`
	DatePrecision string             `bson:"date_precision,omitempty" json:"datePrecision,omitempty"`

	// 剧院：ID + 旧版引用 + 名称/城市快照
	TheatreID   string              `bson:"theatre_id,omitempty" json:"theatreId,omitempty"`
	TheatreRef  *domain.DocumentRef `bson:"theatre_ref,omitempty" json:"-"`
	TheatreName string              `bson:"theatre_name,omitempty" json:"theatreName,omitempty"`
	City        string              `bson:"city,omitempty" json:"city,omitempty"`

	// 角色关系：ID 数组为首选，引用数组仅兼容历史数据
	ArtistIDs    []string             `bson:"artist_ids,omitempty" json:"artistIds,omitempty"`
	ArtistRefs   []domain.DocumentRef `bson:"artist_refs,omitempty" json:"-"`
	ArtistNames  []string             `bson:"artist_names,omitempty" json:"artistNames,omitempty"`
	ComposerIDs  []string             `bson:"composer_ids,omitempty" json:"composerIds,omitempty"`
	ComposerRefs []domain.DocumentRef `bson:"composer_refs,omitempty" json:"-"`
	LyricistIDs  []string             `bson:"lyricist_ids,omitempty" json:"lyricistIds,omitempty"`
	LyricistRefs []domain.DocumentRef `bson:"lyricist_refs,omitempty" json:"-"`

	DateAdded   time.Time `bson:"date_added" json:"dateAdded"`
	DateUpdated time.Time `bson:"date_updated" json:"dateUpdated"`
}

// RoleIDs 读取某角色的成员 ID：优先 ID 数组，缺失时从旧版引用推导
func (r *Recording) RoleIDs(role PersonRole) []string {
	var ids []string
	var refs []domain.DocumentRef
	switch role {
	case RoleArtist:
		ids, refs = r.ArtistIDs, r.ArtistRefs
	case RoleComposer:
		ids, refs = r.ComposerIDs, r.ComposerRefs
	case RoleLyricist:
		ids, refs = r.LyricistIDs, r.LyricistRefs
	}
	if ids != nil {
		return ids
	}
	if derived := domain.RefIDs(refs); derived != nil {
		return derived
	}
	return []string{}
}

// TheatreKey 剧院 ID，旧文档只有引用时从引用取
func (r *Recording) TheatreKey() string {
	if r.TheatreID != "" {
		return r.TheatreID
	}
	if r.TheatreRef != nil && !r.TheatreRef.ID.IsZero() {
		return r.TheatreRef.ID.Hex()
	}
	return ""
}

// RolesOf 返回人员在该录音中的全部角色
func (r *Recording) RolesOf(personID string) []PersonRole {
	var roles []PersonRole
	for _, role := range PersonRoles {
		for _, id := range r.RoleIDs(role) {
			if id == personID {
				roles = append(roles, role)
				break
			}
		}
	}
	return roles
}

func (r *Recording) DisplayDate() string {
	return domain_util.FormatRecordingDate(r.RecordingDate, r.ReleaseYear, r.DatePrecision)
}

var RecordingSortFields = []string{"title", "theatreName", "city", "releaseYear", "recordingDate", "dateAdded", "dateUpdated"}

func (r *Recording) FieldValue(field string) any {
	switch field {
	case "title":
		return r.Title
	case "theatreName":
		return r.TheatreName
	case "city":
		return r.City
	case "releaseYear":
		return r.ReleaseYear
	case "recordingDate":
		return r.RecordingDate
	case "dateAdded":
		return r.DateAdded
	case "dateUpdated":
		return r.DateUpdated
	}
	return nil
}

func (r *Recording) SearchFields() domain_util.SearchFields {
	return domain_util.SearchFields{
		"title":   {r.Title},
		"theatre": {r.TheatreName, r.City},
		"artist":  r.ArtistNames,
	}
}

// RecordingInput 录音表单；指针字段为 nil 表示未提供，不写入存储
type RecordingInput struct {
	Title         string   `json:"title" validate:"required,notblank"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	Info          *string  `json:"info,omitempty"`
	OneDriveLink  *string  `json:"oneDriveLink,omitempty" validate:"omitempty,url"`
	GalleryImages []string `json:"galleryImages,omitempty"`
	DatePrecision string   `json:"datePrecision,omitempty" validate:"omitempty,oneof=year full"`
	DateInput     string   `json:"date,omitempty"`
	TheatreID     *string  `json:"theatreId,omitempty"`
	ArtistIDs     []string `json:"artistIds,omitempty"`
	ComposerIDs   []string `json:"composerIds,omitempty"`
	LyricistIDs   []string `json:"lyricistIds,omitempty"`
}

// RecordingDetail 详情视图：悬空引用在解析时直接省略
type RecordingDetail struct {
	Recording   *Recording `json:"recording"`
	Theatre     *Theatre   `json:"theatre,omitempty"`
	Artists     []*Person  `json:"artists"`
	Composers   []*Person  `json:"composers"`
	Lyricists   []*Person  `json:"lyricists"`
	DisplayDate string     `json:"displayDate"`
	DateInput   string     `json:"dateInput"`
}
