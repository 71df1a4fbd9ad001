package usecase

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

const longitudMinimaNombre = 3

// ProductoUseCase casos de uso CRUD para productos. El stock se fija al crear
// y de ahí en adelante solo cambia vía entradas y salidas.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear valida y persiste un producto nuevo.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if err := validarCampos(in.Nombre, in.Categoria, in.Precio, in.Unidad, in.Proveedor); err != nil {
		return nil, err
	}
	if in.Stock.LessThan(decimal.Zero) {
		return nil, domain.Validacionf("el stock no puede ser negativo")
	}
	if in.FechaCaducidad.EsCero() {
		return nil, domain.Validacionf("la fecha de caducidad es requerida")
	}
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Categoria:      in.Categoria,
		Precio:         in.Precio.Round(2),
		Stock:          in.Stock,
		Unidad:         in.Unidad,
		FechaCaducidad: in.FechaCaducidad,
		Proveedor:      in.Proveedor,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return dto.AProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.AProductoResponse(producto), nil
}

// Listar devuelve todos los productos.
func (uc *ProductoUseCase) Listar() ([]dto.ProductoResponse, error) {
	lista, err := uc.repo.Listar()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *dto.AProductoResponse(p))
	}
	return items, nil
}

// Actualizar modifica un producto existente. El stock no se toca por aquí;
// las entradas y salidas ya registradas conservan el nombre con el que se
// crearon aunque el producto se renombre.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.Precio != nil {
		producto.Precio = in.Precio.Round(2)
	}
	if in.Unidad != nil {
		producto.Unidad = *in.Unidad
	}
	if in.FechaCaducidad != nil {
		producto.FechaCaducidad = *in.FechaCaducidad
	}
	if in.Proveedor != nil {
		producto.Proveedor = *in.Proveedor
	}
	if err := validarCampos(producto.Nombre, producto.Categoria, producto.Precio, producto.Unidad, producto.Proveedor); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return dto.AProductoResponse(producto), nil
}

// Eliminar borra un producto por ID.
func (uc *ProductoUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

// validarCampos aplica las reglas del formulario de productos.
func validarCampos(nombre, categoria string, precio decimal.Decimal, unidad, proveedor string) error {
	if utf8.RuneCountInString(nombre) < longitudMinimaNombre {
		return domain.Validacionf("el nombre debe tener al menos %d caracteres", longitudMinimaNombre)
	}
	if !entity.CategoriaValida(categoria) {
		return domain.Validacionf("categoría no válida: %q", categoria)
	}
	if !precio.GreaterThan(decimal.Zero) {
		return domain.Validacionf("el precio debe ser mayor a 0")
	}
	if !entity.UnidadValida(unidad) {
		return domain.Validacionf("unidad de medida no válida: %q", unidad)
	}
	if utf8.RuneCountInString(proveedor) < longitudMinimaNombre {
		return domain.Validacionf("el nombre del proveedor debe tener al menos %d caracteres", longitudMinimaNombre)
	}
	return nil
}
