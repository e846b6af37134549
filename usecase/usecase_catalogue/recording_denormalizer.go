package usecase_catalogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roleFieldNames 角色 -> (ID 数组字段, 旧版引用字段)
var roleFieldNames = map[catalogue_models.PersonRole][2]string{
	catalogue_models.RoleArtist:   {"artist_ids", "artist_refs"},
	catalogue_models.RoleComposer: {"composer_ids", "composer_refs"},
	catalogue_models.RoleLyricist: {"lyricist_ids", "lyricist_refs"},
}

// RecordingDenormalizer 写入录音时同步写 ID 数组、旧版引用与名称快照；读取时解析引用
type RecordingDenormalizer struct {
	people   catalogue_interface.PersonRepository
	theatres catalogue_interface.TheatreRepository
	now      func() time.Time
}

func NewRecordingDenormalizer(
	people catalogue_interface.PersonRepository,
	theatres catalogue_interface.TheatreRepository,
) *RecordingDenormalizer {
	return &RecordingDenormalizer{
		people:   people,
		theatres: theatres,
		now:      time.Now,
	}
}

// BuildFields 把表单转换为待写入字段；未提供的字段为 nil，由存储层丢弃。
// 更新时 stored 为库中现有录音，用于补齐未提交的精度或日期。
func (d *RecordingDenormalizer) BuildFields(
	ctx context.Context,
	input *catalogue_models.RecordingInput,
	isCreate bool,
	stored *catalogue_models.Recording,
) (bson.M, error) {
	fields := bson.M{
		"title":          strings.TrimSpace(input.Title),
		"image_url":      input.ImageURL,
		"info":           input.Info,
		"one_drive_link": input.OneDriveLink,
		"gallery_images": input.GalleryImages,
	}

	if isCreate {
		precision := domain_util.NormalizePrecision(input.DatePrecision)
		date, year := domain_util.ParseRecordingDateInput(input.DateInput, precision, d.now())
		fields["date_precision"] = precision
		fields["recording_date"] = date
		fields["release_year"] = year
	} else if input.DateInput != "" || input.DatePrecision != "" {
		for k, v := range d.updateDateFields(input, stored) {
			fields[k] = v
		}
	}

	if input.TheatreID != nil {
		theatreFields, err := d.TheatreFields(ctx, *input.TheatreID)
		if err != nil {
			return nil, err
		}
		for k, v := range theatreFields {
			fields[k] = v
		}
	}

	roles := map[catalogue_models.PersonRole][]string{
		catalogue_models.RoleArtist:   input.ArtistIDs,
		catalogue_models.RoleComposer: input.ComposerIDs,
		catalogue_models.RoleLyricist: input.LyricistIDs,
	}
	for _, role := range catalogue_models.PersonRoles {
		ids := roles[role]
		if ids == nil {
			continue
		}
		roleFields, err := d.RoleFields(ctx, role, ids)
		if err != nil {
			return nil, err
		}
		for k, v := range roleFields {
			fields[k] = v
		}
	}

	return fields, nil
}

// updateDateFields 只改精度时由已存日期换算；只改日期时沿用已存精度
func (d *RecordingDenormalizer) updateDateFields(input *catalogue_models.RecordingInput, stored *catalogue_models.Recording) bson.M {
	storedPrecision := ""
	var storedDate *time.Time
	if stored != nil {
		storedPrecision = stored.DatePrecision
		storedDate = stored.RecordingDate
	}

	precision := domain_util.NormalizePrecision(storedPrecision)
	if input.DatePrecision != "" {
		precision = domain_util.NormalizePrecision(input.DatePrecision)
	}

	raw := strings.TrimSpace(input.DateInput)
	if raw == "" {
		full := domain_util.FormatRecordingDateInput(storedDate, domain_util.PrecisionFull)
		if full == "" {
			return bson.M{"date_precision": precision}
		}
		raw = domain_util.ConvertDateInputPrecision(full, precision)
	}

	date, year := domain_util.ParseRecordingDateInput(raw, precision, d.now())
	return bson.M{
		"date_precision": precision,
		"recording_date": date,
		"release_year":   year,
	}
}

// TheatreFields 写 theatreId、引用与名称/城市快照；空 ID 表示清除剧院
func (d *RecordingDenormalizer) TheatreFields(ctx context.Context, theatreID string) (bson.M, error) {
	theatreID = strings.TrimSpace(theatreID)
	if theatreID == "" {
		return bson.M{
			"theatre_id":   "",
			"theatre_ref":  primitive.Null{},
			"theatre_name": "",
			"city":         "",
		}, nil
	}

	oid, err := domain.ParseID(theatreID)
	if err != nil {
		return nil, fmt.Errorf("%w: theatre: %v", domain.ErrValidation, err)
	}
	theatre, err := d.theatres.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown theatre %s", domain.ErrValidation, theatreID)
		}
		return nil, err
	}

	return bson.M{
		"theatre_id":   oid.Hex(),
		"theatre_ref":  domain.NewDocumentRef(domain.CollectionTheatres, oid),
		"theatre_name": theatre.Name,
		"city":         theatre.City,
	}, nil
}

// RoleFields 写某角色的 ID 数组与并行的旧版引用；演员额外写名称快照。
// 找不到的人员保留 ID 与引用，但不进入名称快照。
func (d *RecordingDenormalizer) RoleFields(ctx context.Context, role catalogue_models.PersonRole, ids []string) (bson.M, error) {
	names, ok := roleFieldNames[role]
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %s", domain.ErrValidation, role)
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	hexIDs := make([]string, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		oid, err := domain.ParseID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrValidation, role, err)
		}
		if seen[oid] {
			continue
		}
		seen[oid] = true
		oids = append(oids, oid)
		hexIDs = append(hexIDs, oid.Hex())
	}

	refs := make([]domain.DocumentRef, 0, len(oids))
	for _, oid := range oids {
		refs = append(refs, domain.NewDocumentRef(domain.CollectionPeople, oid))
	}

	fields := bson.M{
		names[0]: hexIDs,
		names[1]: refs,
	}

	if role == catalogue_models.RoleArtist {
		people, err := d.ResolvePeople(ctx, hexIDs)
		if err != nil {
			return nil, err
		}
		artistNames := make([]string, 0, len(people))
		for _, p := range people {
			artistNames = append(artistNames, p.Name)
		}
		fields["artist_names"] = artistNames
	}

	return fields, nil
}

// ResolvePeople 按给定顺序解析人员；悬空 ID 直接省略
func (d *RecordingDenormalizer) ResolvePeople(ctx context.Context, ids []string) ([]*catalogue_models.Person, error) {
	if len(ids) == 0 {
		return []*catalogue_models.Person{}, nil
	}
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := domain.ParseID(id); err == nil {
			oids = append(oids, oid)
		}
	}

	found, err := d.people.GetByIDs(ctx, oids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve people: %w", err)
	}
	byID := make(map[string]*catalogue_models.Person, len(found))
	for _, p := range found {
		byID[p.ID.Hex()] = p
	}

	out := make([]*catalogue_models.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ResolveTheatre 悬空引用返回 nil
func (d *RecordingDenormalizer) ResolveTheatre(ctx context.Context, rec *catalogue_models.Recording) (*catalogue_models.Theatre, error) {
	key := rec.TheatreKey()
	if key == "" {
		return nil, nil
	}
	oid, err := domain.ParseID(key)
	if err != nil {
		return nil, nil
	}
	theatre, err := d.theatres.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return theatre, nil
}

// Detail 组装详情视图；各角色成员一律经 RoleIDs 读取
func (d *RecordingDenormalizer) Detail(ctx context.Context, rec *catalogue_models.Recording) (*catalogue_models.RecordingDetail, error) {
	theatre, err := d.ResolveTheatre(ctx, rec)
	if err != nil {
		return nil, err
	}

	detail := &catalogue_models.RecordingDetail{
		Recording:   rec,
		Theatre:     theatre,
		DisplayDate: rec.DisplayDate(),
		DateInput:   domain_util.FormatRecordingDateInput(rec.RecordingDate, rec.DatePrecision),
	}
	if detail.Artists, err = d.ResolvePeople(ctx, rec.RoleIDs(catalogue_models.RoleArtist)); err != nil {
		return nil, err
	}
	if detail.Composers, err = d.ResolvePeople(ctx, rec.RoleIDs(catalogue_models.RoleComposer)); err != nil {
		return nil, err
	}
	if detail.Lyricists, err = d.ResolvePeople(ctx, rec.RoleIDs(catalogue_models.RoleLyricist)); err != nil {
		return nil, err
	}
	return detail, nil
}
