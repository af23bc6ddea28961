package mock

import (
	"context"
	"sort"
	"sync"
)

type UploadArgs struct {
	FilePath   string
	TargetPath string
}

// Uploader records every upload. Errors maps a target path to the error returned for it.
type Uploader struct {
	lock              sync.Mutex
	RecordedCallsArgs []UploadArgs
	Errors            map[string]error
}

func (u *Uploader) UploadFile(_ context.Context, filePath, targetPath string) error {
	u.lock.Lock()
	defer u.lock.Unlock()

	u.RecordedCallsArgs = append(u.RecordedCallsArgs, UploadArgs{
		FilePath:   filePath,
		TargetPath: targetPath,
	})

	return u.Errors[targetPath]
}

// Calls returns the recorded calls sorted by target path, since uploads may run concurrently.
func (u *Uploader) Calls() []UploadArgs {
	u.lock.Lock()
	defer u.lock.Unlock()

	calls := append([]UploadArgs(nil), u.RecordedCallsArgs...)
	sort.Slice(calls, func(i, j int) bool {
		return calls[i].TargetPath < calls[j].TargetPath
	})

	return calls
}
