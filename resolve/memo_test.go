package resolve

import (
	"errors"
	"testing"

	"github.com/ericfournier2/encodexplorer/table"
)

func TestMemoBuildsOnce(t *testing.T) {
	var memo Memo
	builds := 0
	build := func() (*table.Table, error) {
		builds++
		return Resolve(fixtureTables(), nil)
	}

	first, err := memo.Get(build)
	if err != nil {
		t.Fatal(err)
	}
	second, err := memo.Get(build)
	if err != nil {
		t.Fatal(err)
	}

	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
	if first != second {
		t.Error("Get should return the cached table")
	}
	if !memo.Cached() {
		t.Error("Cached should report true after Get")
	}

	memo.Reset()
	if memo.Cached() {
		t.Error("Cached should report false after Reset")
	}
	if _, err := memo.Get(build); err != nil {
		t.Fatal(err)
	}
	if builds != 2 {
		t.Errorf("build ran %d times after reset, want 2", builds)
	}
}

func TestMemoBuildErrorLeavesEmpty(t *testing.T) {
	var memo Memo
	boom := errors.New("boom")

	if _, err := memo.Get(func() (*table.Table, error) { return nil, boom }); err != boom {
		t.Errorf("err = %v, want boom", err)
	}
	if memo.Cached() {
		t.Error("a failed build should not populate the memo")
	}
}
