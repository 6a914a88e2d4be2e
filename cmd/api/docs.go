package main

// @title           Asadero POS API
// @version         1.0
// @description     API para la gestión de un asadero de pollos: productos, clientes, ventas, fiados y gastos

// @contact.name   Soporte
// @contact.email  soporte@asadero-pos.local

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Encabezado de autenticación JWT con el esquema Bearer. Ejemplo: "Bearer {token}"
