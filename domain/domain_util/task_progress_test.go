package domain_util

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskProgress_TracksFilesIndependently(t *testing.T) {
	names := []string{"a.png", "b.jpg", "c.gif"}
	tp := NewTaskProgress("batch-1", names)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tp.SetProgress(i, 50)
			if i == 1 {
				tp.MarkError(i, errors.New("unsupported file type"))
				return
			}
			tp.MarkSuccess(i, "https://cdn.example/"+names[i])
		}(i)
	}
	wg.Wait()

	files, finished := tp.Snapshot()
	assert.False(t, finished)
	assert.Equal(t, UploadStatusSuccess, files[0].Status)
	assert.Equal(t, float64(100), files[0].Progress)
	assert.Equal(t, UploadStatusError, files[1].Status)
	assert.Equal(t, "unsupported file type", files[1].Error)
	assert.Equal(t, float64(50), files[1].Progress)
	assert.Equal(t, "https://cdn.example/c.gif", files[2].URL)

	tp.Finish()
	_, finished = tp.Snapshot()
	assert.True(t, finished)
}

func TestTaskProgress_ClampsAndIgnoresOutOfRange(t *testing.T) {
	tp := NewTaskProgress("batch-2", []string{"only.png"})

	tp.SetProgress(0, 180)
	tp.SetProgress(3, 20)
	tp.MarkSuccess(-1, "x")

	files, _ := tp.Snapshot()
	assert.Len(t, files, 1)
	assert.Equal(t, float64(100), files[0].Progress)
	assert.Equal(t, UploadStatusUploading, files[0].Status)
}
