package resources_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/xypong/resources"
	"github.com/jetsetilly/xypong/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong")

	// base path is not prepended twice
	pth, err = resources.JoinPath(".xypong/baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".xypong/baz")
}

func TestReadWrite(t *testing.T) {
	t.Chdir(t.TempDir())

	// missing files are empty
	s, err := resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	err = resources.Write("window", "10 10 640 640")
	test.ExpectSuccess(t, err)

	_, err = os.Stat(".xypong/window")
	test.ExpectSuccess(t, err)

	s, err = resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10 10 640 640")
}
