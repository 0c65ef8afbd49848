package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"attrition-risk/internal/config"
	"attrition-risk/internal/service"
)

// Emite un access token firmado con JWT_SECRET para llamar a la API.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	subject := flag.String("sub", "", "identificador del analista")
	role := flag.String("role", service.RoleAnalyst, "rol: analyst o admin")
	ttl := flag.Duration("ttl", cfg.JWTAccessTTL, "vigencia del token")
	flag.Parse()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET no configurado")
	}
	if *subject == "" {
		log.Fatal("-sub es obligatorio")
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, *ttl)
	token, err := jwtSvc.IssueAccessToken(*subject, *role)
	if err != nil {
		log.Fatalf("emitir token: %v", err)
	}
	fmt.Println(token)
}
