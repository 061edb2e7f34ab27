package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
	"github.com/imamik/redstack/internal/util/naming"
)

// VolumesPhase creates one access point per logical volume, adds the
// matching task definition volume and mounts it into its container.
type VolumesPhase struct{}

// Name implements provisioning.Phase.
func (p *VolumesPhase) Name() string { return "volumes" }

// Provision implements provisioning.Phase.
func (p *VolumesPhase) Provision(ctx *provisioning.Context) error {
	for _, v := range catalog.Volumes() {
		if err := WireVolume(ctx, p.Name(), v); err != nil {
			return err
		}
	}
	return nil
}

// WireVolume is idempotent: the access point is only registered once and
// the volume and mount extensions are keyed by volume name.
func WireVolume(ctx *provisioning.Context, phase string, v catalog.Volume) error {
	ap := resource.NewCreated(v.AccessPoint, resource.KindAccessPoint, resource.Attributes{
		"volume": v.Name,
		"path":   v.Path(),
		"owner":  v.Owner,
	})
	ap.DependsOn = []string{catalog.NameFileSystem}
	if err := ensure(ctx, phase, labels.RoleStorage, ap, copyAttr("fileSystemId", catalog.NameFileSystem, resource.AttrID)); err != nil {
		return err
	}

	volume := func(r graph.Reader, attrs resource.Attributes) error {
		fsID, err := ref(r, catalog.NameFileSystem, resource.AttrID)
		if err != nil {
			return err
		}
		apID, err := ref(r, v.AccessPoint, resource.AttrID)
		if err != nil {
			return err
		}
		volumes, _ := attrs["volumes"].([]resource.EFSVolume)
		attrs["volumes"] = append(volumes, resource.EFSVolume{
			Name:              v.Name,
			FileSystemID:      fsID,
			AccessPointID:     apID,
			TransitEncryption: true,
			IAMAuthorization:  true,
		})
		return nil
	}
	if err := ctx.Graph.Extend(catalog.NameTaskDef, naming.VolumeKey(v.Name),
		[]string{v.AccessPoint, catalog.NameFileSystem}, volume); err != nil {
		return err
	}

	mount := func(r graph.Reader, attrs resource.Attributes) error {
		if _, err := r.Attribute(v.AccessPoint, resource.AttrID); err != nil {
			return err
		}
		mounts, _ := attrs["mountPoints"].([]resource.MountBinding)
		attrs["mountPoints"] = append(mounts, resource.MountBinding{
			ContainerPath: v.ContainerPath,
			SourceVolume:  v.Name,
			ReadOnly:      false,
		})
		return nil
	}
	return ctx.Graph.Extend(v.Container, naming.MountKey(v.Name), []string{v.AccessPoint}, mount)
}
