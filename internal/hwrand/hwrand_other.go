//go:build !amd64

package hwrand

func supported() bool { return false }

func fill(b []byte) bool { return false }
