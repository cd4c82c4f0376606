package borrowings

import (
	"net/http"

	"library-service/internal/notify"

	"github.com/gin-gonic/gin"
)

// NotifyHandler exposes the overdue notifier as a manual trigger for an
// external job runner.
type NotifyHandler struct {
	Notifier *notify.OverdueNotifier
}

func NewNotifyHandler(n *notify.OverdueNotifier) *NotifyHandler {
	return &NotifyHandler{Notifier: n}
}

func (h *NotifyHandler) NotifyOverdue(c *gin.Context) {
	sent, failed, err := h.Notifier.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan for overdue borrowings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notified": sent, "failed": failed})
}
