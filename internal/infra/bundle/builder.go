// Package bundle assembles per-device provisioning archives from embedded
// category templates.
package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"embed"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"fleet/config"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/service"

	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

const qrFileName = "enrollment-qr.png"

// templateData is the value set injected into every .tmpl file of a
// category.
type templateData struct {
	ServerURL        string
	Tenant           string
	DeviceIdentifier string
	DeviceName       string
	DeviceType       string
	Owner            string
	AccessToken      string
	RefreshToken     string
}

type builder struct {
	serverURL string
	qr        service.QRCodeService
}

// NewBuilder creates a BundleBuilder backed by the embedded template sets.
func NewBuilder(cfg *config.Config, qr service.QRCodeService) service.BundleBuilder {
	serverURL := ""
	if cfg.Bundle != nil {
		serverURL = cfg.Bundle.ServerURL
	}

	return &builder{
		serverURL: serverURL,
		qr:        qr,
	}
}

// Build renders the category template set and packages it as a zip archive
// together with the enrollment QR code.
func (b *builder) Build(_ context.Context, spec service.BundleSpec) (*entity.ProvisioningBundle, error) {
	category := strings.TrimSpace(spec.Category)
	if category == "" {
		return nil, errors.New("bundle category must not be empty")
	}

	categoryFS, err := fs.Sub(templateFS, path.Join("templates", category))
	if err != nil {
		return nil, errors.Wrapf(err, "open template set for category %q", category)
	}
	if _, err := fs.Stat(categoryFS, "."); err != nil {
		return nil, errors.Errorf("unknown bundle category %q", category)
	}

	data := templateData{
		ServerURL:        b.serverURL,
		Tenant:           spec.Tenant,
		DeviceIdentifier: spec.DeviceIdentifier,
		DeviceName:       spec.DeviceName,
		DeviceType:       entity.DeviceTypeDisplay,
		Owner:            spec.Owner,
		AccessToken:      spec.AccessToken,
		RefreshToken:     spec.RefreshToken,
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	if err := b.writeTemplates(archive, categoryFS, data); err != nil {
		return nil, err
	}

	if err := b.writeEnrollmentQR(archive, spec); err != nil {
		return nil, err
	}

	if err := archive.Close(); err != nil {
		return nil, errors.Wrap(err, "finalize bundle archive")
	}

	return &entity.ProvisioningBundle{
		Payload:  buf.Bytes(),
		FileName: spec.DeviceName + "_" + category + ".zip",
	}, nil
}

// writeTemplates renders every file of the category into the archive.
// Files ending in .tmpl are executed as text templates and stored without
// the suffix; everything else is copied verbatim.
func (b *builder) writeTemplates(archive *zip.Writer, categoryFS fs.FS, data templateData) error {
	entries, err := fs.ReadDir(categoryFS, ".")
	if err != nil {
		return errors.Wrap(err, "read template set")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		contents, err := fs.ReadFile(categoryFS, name)
		if err != nil {
			return errors.Wrapf(err, "read template %q", name)
		}

		if !strings.HasSuffix(name, ".tmpl") {
			if err := writeArchiveFile(archive, name, contents); err != nil {
				return err
			}

			continue
		}

		tmpl, err := template.New(name).Parse(string(contents))
		if err != nil {
			return errors.Wrapf(err, "parse template %q", name)
		}

		var rendered bytes.Buffer
		if err := tmpl.Execute(&rendered, data); err != nil {
			return errors.Wrapf(err, "render template %q", name)
		}

		if err := writeArchiveFile(archive, strings.TrimSuffix(name, ".tmpl"), rendered.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) writeEnrollmentQR(archive *zip.Writer, spec service.BundleSpec) error {
	png, err := b.qr.GenerateEnrollmentQR(service.EnrollmentQR{
		ServerURL:        b.serverURL,
		Tenant:           spec.Tenant,
		DeviceIdentifier: spec.DeviceIdentifier,
		DeviceName:       spec.DeviceName,
		AccessToken:      spec.AccessToken,
	})
	if err != nil {
		return errors.Wrap(err, "generate enrollment QR")
	}

	return writeArchiveFile(archive, qrFileName, png)
}

func writeArchiveFile(archive *zip.Writer, name string, contents []byte) error {
	w, err := archive.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create archive entry %q", name)
	}

	if _, err := w.Write(contents); err != nil {
		return errors.Wrapf(err, "write archive entry %q", name)
	}

	return nil
}
