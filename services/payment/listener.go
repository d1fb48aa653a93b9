package payment

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tatya/config"
	"tatya/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// dismissAfter bounds how long a checkout attempt may stay open before
// it counts as dismissed.
const dismissAfter = 5 * time.Minute

// Listener is the local callback endpoint the hosted checkout page
// reports back to. It stands in for the in-page widget callbacks of
// the browser client: one attempt, one terminal Result.
type Listener struct {
	port   string
	logger *zap.Logger
}

func NewListener() *Listener {
	return &Listener{
		port:   config.AppConfig.PaymentCallbackPort,
		logger: utils.GetLogger(),
	}
}

type successCallback struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type failureCallback struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Collect serves the callback endpoints until the checkout page
// reports success or failure, or the attempt times out (dismissed).
// Callbacks for a different order id are rejected.
func (l *Listener) Collect(orderID string, amountMinorUnits int64, keyID string) Result {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	// The hosted checkout page posts from the provider's origin.
	router.Use(cors.Default())

	results := make(chan Result, 1)
	var once sync.Once
	resolve := func(r Result) {
		once.Do(func() { results <- r })
	}

	router.GET("/checkout", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"key":      keyID,
			"order_id": orderID,
			"amount":   amountMinorUnits,
			"currency": "INR",
		})
	})

	router.POST("/callback/success", func(c *gin.Context) {
		var cb successCallback
		if err := c.ShouldBindJSON(&cb); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing provider identifiers"})
			return
		}
		if cb.OrderID != orderID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order"})
			return
		}
		resolve(Result{Outcome: OutcomeSuccess, PaymentID: cb.PaymentID, Signature: cb.Signature})
		c.JSON(http.StatusOK, gin.H{"received": true})
	})

	router.POST("/callback/failure", func(c *gin.Context) {
		var cb failureCallback
		if err := c.ShouldBindJSON(&cb); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid failure payload"})
			return
		}
		resolve(Result{Outcome: OutcomeFailure, Code: cb.Code, Description: cb.Description})
		c.JSON(http.StatusOK, gin.H{"received": true})
	})

	router.POST("/callback/dismiss", func(c *gin.Context) {
		resolve(Result{Outcome: OutcomeDismissed})
		c.JSON(http.StatusOK, gin.H{"received": true})
	})

	server := &http.Server{Addr: ":" + l.port, Handler: router}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.logger.Error("Payment callback listener failed", zap.Error(err))
			resolve(Result{Outcome: OutcomeFailure, Code: "listener", Description: err.Error()})
		}
	}()

	l.logger.Info("Awaiting payment callback",
		zap.String("orderId", orderID),
		zap.String("port", l.port))

	var result Result
	select {
	case result = <-results:
	case <-time.After(dismissAfter):
		result = Result{Outcome: OutcomeDismissed}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		l.logger.Warn("Payment callback listener shutdown", zap.Error(err))
	}
	return result
}
