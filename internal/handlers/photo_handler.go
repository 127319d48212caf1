package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/media"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

// 10 MB por arquivo enviado.
const maxUploadBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

// PhotoHandler recebe fotos de antes/depois, processa (redimensiona e
// recomprime em webp) e publica no bucket. A URL resultante entra na
// galeria da cliente ou na entrada do dossiê indicada.
type PhotoHandler struct {
	clients  *recordstore.Collection[models.Client, *models.Client]
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewPhotoHandler(
	store recordstore.Store,
	uploader *media.Uploader,
	audit *audit.Dispatcher,
) *PhotoHandler {
	return &PhotoHandler{
		clients:  recordstore.NewCollection[models.Client](store, recordstore.Clients),
		uploader: uploader,
		audit:    audit,
	}
}

// ======================================================
// UPLOAD
// ======================================================

func (h *PhotoHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	clientID := c.Param("id")

	if !h.uploader.Enabled() {
		httperr.BadRequest(c, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do limite de 10MB.")
		return
	}

	client, err := h.clients.Get(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	// Entrada do dossiê é opcional; sem ela a foto vai para a galeria.
	entryID := c.PostForm("dossie_entry_id")
	entryIdx := -1
	if entryID != "" {
		for i := range client.Dossie {
			if client.Dossie[i].ID == entryID {
				entryIdx = i
				break
			}
		}
		if entryIdx < 0 {
			httperr.NotFound(c, "dossie_entry_not_found", "Entrada do dossiê não encontrada.")
			return
		}
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}
	defer src.Close()

	processed, err := media.Process(src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem válida.")
			return
		}
		httperr.Internal(c, "failed_to_process_photo", "Erro ao processar a foto.")
		return
	}

	key := fmt.Sprintf(
		"clients/%s/%s/%s.webp",
		clientID,
		time.Now().Format("2006-01"),
		uuid.NewString(),
	)

	url, err := h.uploader.Upload(c.Request.Context(), key, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	if entryIdx >= 0 {
		client.Dossie[entryIdx].Photos = append(client.Dossie[entryIdx].Photos, url)
	} else {
		client.Gallery = append(client.Gallery, url)
	}

	if _, err := h.clients.Save(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Erro ao salvar a foto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "photo_uploaded",
		Entity:   "client",
		EntityID: clientID,
		Metadata: map[string]any{"key": key, "dossie_entry": entryID},
	})

	c.JSON(201, gin.H{"url": url})
}
