package games_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGames(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Replicator Games Suite")
}
