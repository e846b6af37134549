package domain_util

import (
	"sync"
	"time"
)

const (
	UploadStatusUploading = "uploading"
	UploadStatusSuccess   = "success"
	UploadStatusError     = "error"
)

// FileProgress 单个文件的上传进度
type FileProgress struct {
	FileName string  `json:"file_name"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
	URL      string  `json:"url,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// TaskProgress 一批并发上传的聚合进度；各文件独立推进，全部结束后批次才算完成
type TaskProgress struct {
	ID        string
	Mu        sync.Mutex
	Files     []FileProgress
	StartedAt time.Time
	Finished  bool
}

func NewTaskProgress(id string, fileNames []string) *TaskProgress {
	files := make([]FileProgress, len(fileNames))
	for i, name := range fileNames {
		files[i] = FileProgress{FileName: name, Status: UploadStatusUploading}
	}
	return &TaskProgress{ID: id, Files: files, StartedAt: time.Now()}
}

func (tp *TaskProgress) SetProgress(index int, percent float64) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	if index < 0 || index >= len(tp.Files) {
		return
	}
	if percent > 100 {
		percent = 100
	}
	tp.Files[index].Progress = percent
}

func (tp *TaskProgress) MarkSuccess(index int, url string) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	if index < 0 || index >= len(tp.Files) {
		return
	}
	tp.Files[index].Progress = 100
	tp.Files[index].Status = UploadStatusSuccess
	tp.Files[index].URL = url
}

func (tp *TaskProgress) MarkError(index int, err error) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	if index < 0 || index >= len(tp.Files) {
		return
	}
	tp.Files[index].Status = UploadStatusError
	if err != nil {
		tp.Files[index].Error = err.Error()
	}
}

func (tp *TaskProgress) Finish() {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	tp.Finished = true
}

// Snapshot 返回进度副本
func (tp *TaskProgress) Snapshot() ([]FileProgress, bool) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	out := make([]FileProgress, len(tp.Files))
	copy(out, tp.Files)
	return out, tp.Finished
}
