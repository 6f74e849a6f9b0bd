package buffers

// Sample is loaded when no source file is given
const Sample = `main {
  nombre x = 10;
  crêpe y = 3.14;
  afficher("Bonjour!");
  
  macaron (x > 5) {
      afficher(x);
  } autre {
      afficher(y);
  }
  
  tour_eiffel (x > 0) {
      afficher(x);
      x = x - 1;
  }
}`
