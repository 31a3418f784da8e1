// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria del proceso: un map por tipo de entidad con contador de ids propio
// (empieza en 1, estrictamente creciente, nunca se reutiliza) protegido por
// sync.RWMutex. Las actualizaciones reemplazan el registro completo bajo el
// lock de escritura, de modo que ningún lector observa el par de revisión
// (ReviewedBy, ReviewedAt) a medio asignar.
//
// No hay persistencia entre reinicios. Para eso existe el adaptador postgres.
package memory
