package main

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUnitconv(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "unitconv Suite")
}
