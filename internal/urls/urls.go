package urls

// Documentation URLs referenced from troubleshooting hints.
// All URLs point to the upstream server documentation at https://nacos.io/

// Deployment covers starting the server and the console port layout.
const Deployment = "https://nacos.io/en/docs/latest/quickstart/quick-start/"

// Authentication explains how to enable auth and manage users and roles.
const Authentication = "https://nacos.io/en/docs/latest/manual/admin/auth/"

// OpenAPI is the reference for the HTTP endpoints used by the client.
const OpenAPI = "https://nacos.io/en/docs/latest/manual/user/open-api/"

// Namespaces describes the namespace model and its limits.
const Namespaces = "https://nacos.io/en/docs/latest/guide/user/namespace/"
