package node_test

import (
	"dataforge-server/internal/infra/node"
	"dataforge-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel/attribute"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal("development"))
			gomega.Expect(nodeInfo.CommitHash).To(gomega.Equal("unknown"))
			gomega.Expect(nodeInfo.StartedAt).ToNot(gomega.BeZero())
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			gomega.Expect(utils.IsUUID(node.GetNodeInfo().ID)).To(gomega.BeTrue())
		})

		ginkgo.It("should return the same node on multiple calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()
			gomega.Expect(first).To(gomega.Equal(second))
		})

		ginkgo.It("should not let callers change the shared node", func() {
			node.GetNodeInfo().Version = "tampered"
			gomega.Expect(node.GetNodeInfo().Version).To(gomega.Equal("development"))
		})
	})

	ginkgo.Context("Attributes", func() {
		ginkgo.It("should describe the node", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo.Attributes()).To(gomega.ContainElements(
				attribute.String("service.instance.id", nodeInfo.ID),
				attribute.String("service.version", "development"),
			))
		})
	})

	ginkgo.It("should report a non-negative uptime", func() {
		gomega.Expect(node.GetNodeInfo().Uptime()).To(gomega.BeNumerically(">=", 0))
	})
})
