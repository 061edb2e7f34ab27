package compose

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
)

func kindsOf(p *Plan) map[resource.Kind]int {
	counts := map[resource.Kind]int{}
	for _, name := range p.Graph.Names() {
		n, _ := p.Graph.Node(name)
		counts[n.Kind]++
	}
	return counts
}

var _ = Describe("Composition", func() {
	var (
		input config.ResourceContext
		plan  *Plan
		err   error
		obs   *recorder
	)

	JustBeforeEach(func() {
		obs = &recorder{}
		plan, err = Compose(context.Background(), input, WithObserver(obs))
	})

	Context("with an empty context", func() {
		BeforeEach(func() {
			input = config.ResourceContext{}
		})

		It("creates the whole topology", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Imported).To(BeEmpty())
			Expect(kindsOf(plan)).To(Equal(map[resource.Kind]int{
				resource.KindNetwork:        1,
				resource.KindLoadBalancer:   1,
				resource.KindFileSystem:     1,
				resource.KindAccessPoint:    3,
				resource.KindIdentityRole:   2,
				resource.KindLogGroup:       1,
				resource.KindTaskDefinition: 1,
				resource.KindContainer:      2,
				resource.KindService:        1,
				resource.KindSecret:         1,
				resource.KindSecurityRule:   1,
			}))
		})

		It("resolves every node exactly once", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(obs.ofType(provisioning.EventNodeResolved)).To(HaveLen(plan.Graph.Len()))
			Expect(obs.ofType(provisioning.EventNodeFailed)).To(BeEmpty())
			for _, name := range plan.Graph.Names() {
				state, _ := plan.Graph.State(name)
				Expect(state).To(Equal(graph.Resolved), name)
			}
		})

		It("orders dependencies before dependents", func() {
			order, oerr := plan.Graph.TopologicalOrder()
			Expect(oerr).NotTo(HaveOccurred())

			position := map[string]int{}
			for i, name := range order {
				position[name] = i
			}
			for _, name := range order {
				deps, derr := plan.Graph.Dependencies(name)
				Expect(derr).NotTo(HaveOccurred())
				for _, dep := range deps {
					Expect(position[dep]).To(BeNumerically("<", position[name]), "%s -> %s", name, dep)
				}
			}
		})
	})

	Context("with an imported network and load balancer", func() {
		BeforeEach(func() {
			input = config.ResourceContext{
				ExistingVpcID:  "vpc-0123abcd",
				ExistingAlbArn: "arn:aws:elasticloadbalancing:eu-west-1:123456789012:loadbalancer/app/shared/abc",
			}
		})

		It("registers both as reference-only nodes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Imported).To(ConsistOf(catalog.NameExistingVpc, catalog.NameExistingAlb))
			Expect(obs.ofType(provisioning.EventNodeImported)).To(HaveLen(2))

			for _, name := range plan.Imported {
				n, ok := plan.Graph.Node(name)
				Expect(ok).To(BeTrue())
				Expect(n.Attributes).To(HaveLen(1))
				Expect(n.Attributes).To(HaveKey(resource.AttrID))
			}
		})

		It("creates no endpoints", func() {
			Expect(plan.Endpoints).To(BeEmpty())
		})
	})

	Context("with a malformed network identifier", func() {
		BeforeEach(func() {
			input = config.ResourceContext{ExistingVpcID: "vpc-XYZ"}
		})

		It("aborts before registering anything", func() {
			Expect(err).To(MatchError(resource.ErrConfiguration))
			Expect(plan).To(BeNil())
			Expect(obs.ofType(provisioning.EventNodeRegistered)).To(BeEmpty())
			Expect(obs.ofType(provisioning.EventValidationError)).To(HaveLen(1))
		})
	})
})
