package tests_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEditorSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Editor End-to-End Suite")
}
