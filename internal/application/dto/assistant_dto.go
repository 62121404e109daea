package dto

// AskRequest entrada de POST /api/assistant/ask.
type AskRequest struct {
	Question string `json:"pergunta_usuario" validate:"required,max=2000"`
}

// AskResponse respuesta en lenguaje natural; siempre presente, incluso ante fallos.
type AskResponse struct {
	Answer string `json:"resposta"`
}
