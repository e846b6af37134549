package domain

const (
	CollectionTheatres = "theatres"
)
const (
	CollectionPeople = "people"
)
const (
	CollectionRecordings = "recordings"
)
const (
	CollectionUsers = "users"
)

// 图片存储桶（GridFS）
const (
	BucketRecordingImages = "recording_images"
)
