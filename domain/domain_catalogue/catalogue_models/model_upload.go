package catalogue_models

import (
	"io"

	"github.com/stagearchive/catalogue/domain/domain_util"
)

const (
	ImagePathMain    = "main"
	ImagePathGallery = "gallery"
)

// UploadFile 待上传文件（已读入内存）
type UploadFile struct {
	Name string
	Data []byte
}

// UploadResult 单个文件的结果；失败不影响同批其它文件
type UploadResult struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadBatch 一批上传的最终结果
type UploadBatch struct {
	BatchID   string         `json:"batch_id"`
	Results   []UploadResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// UploadProgress 批次进度快照
type UploadProgress struct {
	BatchID  string                     `json:"batch_id"`
	Files    []domain_util.FileProgress `json:"files"`
	Finished bool                       `json:"finished"`
}

// Blob 存储中读出的对象
type Blob struct {
	Reader      io.ReadCloser
	Size        int64
	ContentType string
}
