package dto

// UploadImageResponse URL pública de la imagen subida (se guarda tal cual en el repuesto).
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// DeleteImageRequest imagen a borrar del almacenamiento.
type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,max=2048"`
}

// LabelSheetRequest hoja de etiquetas QR para varios repuestos.
type LabelSheetRequest struct {
	ArticleNumbers []string `json:"articleNumbers" validate:"required,min=1,max=300,dive,required"`
}
