package entity

// RolePatient is assigned to users stored without any role.
const RolePatient = "Patient"
