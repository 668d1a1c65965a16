// file: internals/features/documents/lifecycle/controller/lifecycle_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bantal_backend/internals/features/documents/lifecycle/dto"
	"bantal_backend/internals/features/documents/lifecycle/service"
	mdDTO "bantal_backend/internals/features/documents/master_documents/dto"
	helper "bantal_backend/internals/helpers"
)

type LifecycleController struct {
	Svc *service.Service
}

func NewLifecycleController(svc *service.Service) *LifecycleController {
	return &LifecycleController{Svc: svc}
}

// POST /api/documents/create/:documentType
// Body JSON datar, atau multipart dengan field "payload" (JSON) + "file".
func (ctl *LifecycleController) Create(c *fiber.Ctx) error {
	payload, file, err := readPayload(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	res, err := ctl.Svc.Create(c.UserContext(), dto.CreateInput{
		Identifier: c.Params("documentType"),
		Payload:    payload,
		CreatedBy:  helper.OptionalIdentityID(c),
		File:       file,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Dokumen berhasil dibuat", fiber.Map{
		"document": mdDTO.FromModel(res.Master),
		"kind":     res.Kind,
		"details":  res.Row,
	})
}

// finalizeForm: multipart (id, finalization_summary, physical_delivery, files)
// atau JSON dengan field yang sama tanpa file.
type finalizeForm struct {
	ID                  string `json:"id"                   form:"id"`
	FinalizationSummary string `json:"finalization_summary" form:"finalization_summary"`
	PhysicalDelivery    string `json:"-"                    form:"physical_delivery"`
	PhysicalDeliveryRaw any    `json:"physical_delivery"    form:"-"`
}

func (f *finalizeForm) physical() (bool, error) {
	raw := strings.TrimSpace(f.PhysicalDelivery)
	switch v := f.PhysicalDeliveryRaw.(type) {
	case bool:
		return v, nil
	case string:
		raw = strings.TrimSpace(v)
	}
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// POST /api/documents/finalize/:documentType
func (ctl *LifecycleController) Finalize(c *fiber.Ctx) error {
	var form finalizeForm
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	rawID := strings.TrimSpace(form.ID)
	if rawID == "" {
		return helper.JsonAppError(c, helper.Validation("id", "Document ID is required"))
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return helper.JsonAppError(c, helper.Validation("id", "id bukan UUID yang valid"))
	}
	physical, err := form.physical()
	if err != nil {
		return helper.JsonAppError(c, helper.Validation("physical_delivery", "physical_delivery harus boolean"))
	}

	var files []dto.FileInput
	if helper.IsMultipart(c) {
		mf, err := c.MultipartForm()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Form multipart tidak valid")
		}
		headers := helper.CollectUploadFiles(mf)
		if len(headers) > service.MaxFinalizeFiles {
			return helper.JsonAppError(c, helper.Validation("files", "maksimal %d file lampiran", service.MaxFinalizeFiles))
		}
		for _, fh := range headers {
			content, mime, err := helper.ReadUpload(fh)
			if err != nil {
				return helper.JsonAppError(c, err)
			}
			files = append(files, dto.FileInput{Filename: fh.Filename, Content: content, MimeType: mime})
		}
	}

	res, err := ctl.Svc.Finalize(c.UserContext(), dto.FinalizeInput{
		Identifier:       c.Params("documentType"),
		DocumentID:       id,
		Summary:          strings.TrimSpace(form.FinalizationSummary),
		PhysicalDelivery: physical,
		Files:            files,
		FinalizedBy:      helper.OptionalIdentityID(c),
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, res.Message, res)
}

// GET /api/documents/:id/detail
func (ctl *LifecycleController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctl.Svc.Detail(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// PUT /api/documents/:id/revisions
func (ctl *LifecycleController) Revise(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	payload, file, err := readPayload(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctl.Svc.Revise(c.UserContext(), dto.ReviseInput{
		DocumentID: id,
		Payload:    payload,
		RevisedBy:  helper.OptionalIdentityID(c),
		File:       file,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Revisi dokumen tersimpan", out)
}

// GET /api/documents/:id/file
func (ctl *LifecycleController) DownloadFile(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	v, err := ctl.Svc.LatestFile(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	c.Set(fiber.HeaderContentType, v.MimeType)
	c.Set("X-Blob-Version", strconv.Itoa(v.Number))
	return c.Status(fiber.StatusOK).Send(v.Content)
}

// GET /api/documents/:id/file/versions
func (ctl *LifecycleController) FileVersions(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctl.Svc.FileVersions(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "ok", out, nil)
}

func readPayload(c *fiber.Ctx) ([]byte, *dto.FileInput, error) {
	if !helper.IsMultipart(c) {
		return append([]byte(nil), c.Body()...), nil, nil
	}
	payload := strings.TrimSpace(c.FormValue("payload"))
	if payload == "" {
		return nil, nil, helper.Validation("payload", "field payload wajib diisi pada multipart")
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return []byte(payload), nil, nil
	}
	content, mime, err := helper.ReadUpload(fh)
	if err != nil {
		return nil, nil, err
	}
	return []byte(payload), &dto.FileInput{Filename: fh.Filename, Content: content, MimeType: mime}, nil
}
