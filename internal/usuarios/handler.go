package usuarios

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Handler agrupa los endpoints del recurso "usuarios".
type Handler struct {
	repo Repository
}

// NewHandler crea el handler sobre el repositorio indicado.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes registra los endpoints del recurso en el router.
func (h *Handler) Routes(r gin.IRouter) {
	r.POST("/usuarios", h.Create)
	r.GET("/usuarios", h.List)
	r.GET("/usuarios/:id", h.Get)
	r.PUT("/usuarios/:id", h.Update)
	r.DELETE("/usuarios/:id", h.Delete)
}

type createRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// Create inserta un registro nuevo.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un JSON en el cuerpo"})
		return
	}

	if req.Nombre == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nombre, email y password son obligatorios"})
		return
	}

	rol := req.Rol
	if rol == "" {
		rol = RolDefault
	}

	record := &UserRecord{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Rol:      rol,
	}
	if err := h.repo.Insert(c.Request.Context(), record); err != nil {
		log.Printf("usuarios: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el usuario"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario creado",
		"data":    record,
	})
}

// List devuelve todos los registros.
func (h *Handler) List(c *gin.Context) {
	records, err := h.repo.All(c.Request.Context())
	if err != nil {
		log.Printf("usuarios: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar los usuarios"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get devuelve un registro por identificador.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		log.Printf("usuarios: get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar el usuario"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update aplica una actualización parcial a un registro.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil || len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un JSON en el cuerpo"})
		return
	}

	// El cliente no puede sobrescribir la identidad del registro.
	delete(patch, "_id")

	record, err := h.repo.UpdateByID(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		log.Printf("usuarios: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado",
		"data":    record,
	})
}

// Delete elimina un registro.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.repo.DeleteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		log.Printf("usuarios: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}

// parseID valida el identificador de la ruta antes de tocar el almacén.
// Responde 400 y devuelve false si es inválido.
func parseID(c *gin.Context) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return bson.ObjectID{}, false
	}
	return id, true
}
