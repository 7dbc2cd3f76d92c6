package main

// @title Turnover API
// @version 1.0
// @description API de sincronización y analítica de inventario sobre el WMS externo.
// @description Replica eventos de entrada/salida, catálogo de productos y cargos, y expone
// @description reportes de volumen, rotación y ocupación de bodegas.

// @host localhost:8001
// @BasePath /

// @tag.name analytics
// @tag.description Reportes de volumen, rotación, clientes, SKUs y bodegas

// @tag.name sync
// @tag.description Disparo de sincronizaciones contra el WMS y bitácora de corridas

// @tag.name warehouses
// @tag.description Capacidad configurada y ocupación por bodega
