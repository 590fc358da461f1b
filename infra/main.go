package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/finance-insights/infra/cloudrun"
	"github.com/GregMSThompson/finance-insights/infra/docker"
	"github.com/GregMSThompson/finance-insights/infra/firestore"
	"github.com/GregMSThompson/finance-insights/infra/identity"
	"github.com/GregMSThompson/finance-insights/infra/provider"
	"github.com/GregMSThompson/finance-insights/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// firebase auth for the bearer tokens the api verifies
		ident, err := identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		db, err := firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		ai, err := vertex.SetupVertex(ctx, prov)
		if err != nil {
			return err
		}

		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		svc, err := cloudrun.SetupCloudRun(ctx, prov, ident, db, ai, repo)
		if err != nil {
			return err
		}

		ctx.Export("apiUrl", svc.Statuses.Index(pulumi.Int(0)).Url())
		return nil
	})
}
